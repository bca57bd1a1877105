package forms

import (
	"reflect"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DefaultValidator plugs go-playground/validator into gin's binding
// layer, driven by the "binding" struct tag.
type DefaultValidator struct {
	once     sync.Once
	validate *validator.Validate
}

var _ binding.StructValidator = (*DefaultValidator)(nil)

func (v *DefaultValidator) ValidateStruct(obj interface{}) error {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}
	return v.engine().Struct(obj)
}

// Engine exposes the underlying validator so custom rules can be
// registered on it.
func (v *DefaultValidator) Engine() interface{} {
	return v.engine()
}

func (v *DefaultValidator) engine() *validator.Validate {
	v.once.Do(func() {
		v.validate = validator.New()
		v.validate.SetTagName("binding")
	})
	return v.validate
}
