package routes

import (
	"fieldserve_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOpportunities = "/opportunities"
	PathProducts      = "/products"
)

func addPipelineRoutes(rg *gin.RouterGroup, opportunityHandler *handlers.OpportunityHandler, productHandler *handlers.ProductHandler) {
	opportunities := rg.Group(PathOpportunities)
	{
		opportunities.POST("", opportunityHandler.CreateOpportunity)
		opportunities.GET("", opportunityHandler.ListOpportunities)
		opportunities.GET("/:id", opportunityHandler.GetOpportunity)
		opportunities.PATCH("/:id/stage", opportunityHandler.ChangeStage)
		opportunities.POST("/:id/activity", opportunityHandler.TouchActivity)
		opportunities.GET("/:id/transitions", opportunityHandler.ListTransitions)
		opportunities.GET("/:id/metrics", opportunityHandler.GetMetrics)
	}

	products := rg.Group(PathProducts)
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.DELETE("/:id", productHandler.DeactivateProduct)
	}
}
