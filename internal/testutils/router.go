package testutils

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jaewonk/gpu-admin-go/internal/api/routes"
)

func SetupRouter(gormDB *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, gormDB, nil)
	return r
}
