package httputil

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RequestHost constructs the base URL for links in responses.
//
// The scheme defaults to http and only switches to https
// if the x-forwarded-proto header is set accordingly.
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost
	}

	return scheme + "://" + host
}

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(io.EOF, err) {
			return ErrRequestBodyEmpty
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// ParseID parses a numeric resource ID from a URI parameter.
func ParseID(c *gin.Context, param string) (uint64, error) {
	parsed, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}

	return parsed, nil
}
