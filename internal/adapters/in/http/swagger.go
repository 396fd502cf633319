package http

import (
	"context"
	"sync"

	"kitchen/internal/generated/servers"

	"github.com/swaggo/swag"
)

type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

var registerOnce sync.Once

// RegisterSwaggerDoc publishes the embedded OpenAPI document to the swagger UI.
func RegisterSwaggerDoc() error {
	spec, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	if err = spec.Validate(context.Background()); err != nil {
		return err
	}
	data, err := spec.MarshalJSON()
	if err != nil {
		return err
	}

	registerOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{json: string(data)})
	})
	return nil
}
