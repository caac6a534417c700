package request

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
)

// BindPayload decodes the JSON body as a raw payload. An empty body is an empty payload,
// so the entity validators report the missing properties.
func BindPayload(c *gin.Context) (domain.Payload, error) {
	p := domain.Payload{}
	if err := c.ShouldBindJSON(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Payload{}, nil
		}
		return nil, err
	}
	return p, nil
}
