package handler

import "github.com/gin-gonic/gin"

// ResourceHandler is the route-facing surface every content kind exposes.
// It lets the router and the container treat the five generic handler
// instantiations uniformly.
type ResourceHandler interface {
	List(c *gin.Context)
	GetByID(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}
