package i

import "github.com/gin-gonic/gin"

// Controller registers HTTP routes on the router's public and
// protected groups.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
