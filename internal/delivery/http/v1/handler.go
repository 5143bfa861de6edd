package v1

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/rdmitr/todo-api/internal/stores"
)

type Handler interface {
	HandleRequestIDMiddleware(c *gin.Context)

	HandleListTasks(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)

	HandleMarkDone(c *gin.Context)
	HandleUnmarkDone(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	tasks  stores.TaskStore
	dones  stores.DoneStore
}

func New(
	logger zerolog.Logger,
	taskStore stores.TaskStore,
	doneStore stores.DoneStore,
) Handler {
	registerBindingTagNames()
	return &handlerImpl{
		logger: logger,
		tasks:  taskStore,
		dones:  doneStore,
	}
}

var bindingTagNamesOnce sync.Once

// registerBindingTagNames makes validator failures report json field
// names ("due_date") instead of Go struct field names ("DueDate").
func registerBindingTagNames() {
	bindingTagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
