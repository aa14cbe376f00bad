package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jaewonk/gpu-admin-go/pkg/types"
)

var ErrEmptyParameter = errors.New("empty parameter")

func ParseIDParam(c *gin.Context, param string) (uint, error) {
	idStr := c.Param(param)
	idUint64, err := strconv.ParseUint(idStr, 10, 64)
	return uint(idUint64), err
}

// GetClaimsFromContext returns the identity the JWT middleware attached.
var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}

	return claims, nil
}

// GetUserNameFromContext returns the acting username, or "" for anonymous
// contexts (audit entries tolerate a missing actor).
var GetUserNameFromContext = func(c *gin.Context) (string, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}
