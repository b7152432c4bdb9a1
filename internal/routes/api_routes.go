package routes

import (
	"stagecraft-crm/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes registers every authenticated endpoint.
func RegisterAPIRoutes(rg *gin.RouterGroup) {
	api := rg.Group("/api")

	api.GET("/profile", handlers.GetProfileHandler)
	api.PUT("/profile", handlers.UpdateProfileHandler)
	api.GET("/dashboard", handlers.GetDashboardHandler)

	clients := api.Group("/clients")
	{
		clients.GET("", handlers.ListClientsHandler)
		clients.POST("", handlers.CreateClientHandler)
		clients.GET("/:id", handlers.GetClientHandler)
		clients.PUT("/:id", handlers.UpdateClientHandler)
		clients.DELETE("/:id", handlers.DeleteClientHandler)
	}

	contacts := api.Group("/contacts")
	{
		contacts.GET("", handlers.ListContactsHandler)
		contacts.POST("", handlers.CreateContactHandler)
		contacts.PUT("/:id", handlers.UpdateContactHandler)
		contacts.DELETE("/:id", handlers.DeleteContactHandler)
	}

	contractors := api.Group("/contractors")
	{
		contractors.GET("", handlers.ListContractorsHandler)
		contractors.POST("", handlers.CreateContractorHandler)
		contractors.GET("/:id", handlers.GetContractorHandler)
		contractors.PUT("/:id", handlers.UpdateContractorHandler)
		contractors.DELETE("/:id", handlers.DeleteContractorHandler)
	}

	events := api.Group("/events")
	{
		events.GET("", handlers.ListEventsHandler)
		events.POST("", handlers.CreateEventHandler)
		events.GET("/:id", handlers.GetEventHandler)
		events.PUT("/:id", handlers.UpdateEventHandler)
		events.DELETE("/:id", handlers.DeleteEventHandler)

		events.GET("/:id/contractors", handlers.ListEventContractorsHandler)
		events.POST("/:id/contractors", handlers.AddEventContractorHandler)
		events.DELETE("/:id/contractors/:bookingId", handlers.RemoveEventContractorHandler)

		events.GET("/:id/files", handlers.ListEventFilesHandler)
		events.POST("/:id/files", handlers.UploadEventFileHandler)
		events.GET("/:id/files/:fileId", handlers.DownloadEventFileHandler)
		events.DELETE("/:id/files/:fileId", handlers.DeleteEventFileHandler)

		events.GET("/:id/tasks", handlers.ListTasksHandler)

		events.GET("/:id/budget/items", handlers.ListBudgetItemsHandler)
		events.GET("/:id/budget/summary", handlers.GetBudgetSummaryHandler)
		events.GET("/:id/budget/export", handlers.ExportBudgetHandler)

		events.GET("/:id/vendors", handlers.ListVendorsHandler)
		events.POST("/:id/vendors/import", handlers.ImportVendorsFromResearchHandler)
		events.GET("/:id/vendors/export", handlers.ExportVendorsXLSXHandler)
		events.GET("/:id/sourcing-report", handlers.ExportSourcingPDFHandler)

		events.GET("/:id/research", handlers.ListResearchResultsHandler)
		events.POST("/:id/research", handlers.RunResearchHandler)
	}

	tasks := api.Group("/tasks")
	{
		tasks.POST("", handlers.CreateTaskHandler)
		tasks.PUT("/:id", handlers.UpdateTaskHandler)
		tasks.DELETE("/:id", handlers.DeleteTaskHandler)
	}

	meetings := api.Group("/meetings")
	{
		meetings.GET("", handlers.ListMeetingsHandler)
		meetings.POST("", handlers.CreateMeetingHandler)
		meetings.GET("/:id", handlers.GetMeetingHandler)
		meetings.PUT("/:id", handlers.UpdateMeetingHandler)
		meetings.DELETE("/:id", handlers.DeleteMeetingHandler)
	}

	budget := api.Group("/budget")
	{
		budget.GET("/categories", handlers.ListBudgetCategoriesHandler)
		budget.POST("/categories", handlers.CreateBudgetCategoryHandler)
		budget.DELETE("/categories/:id", handlers.DeleteBudgetCategoryHandler)
		budget.POST("/items", handlers.CreateBudgetItemHandler)
		budget.PUT("/items/:id", handlers.UpdateBudgetItemHandler)
		budget.DELETE("/items/:id", handlers.DeleteBudgetItemHandler)
	}

	templates := api.Group("/templates")
	{
		templates.GET("", handlers.ListDocumentTemplatesHandler)
		templates.POST("", handlers.CreateDocumentTemplateHandler)
		templates.POST("/preview", handlers.PreviewTemplateHandler)
		templates.GET("/:id", handlers.GetDocumentTemplateHandler)
		templates.PUT("/:id", handlers.UpdateDocumentTemplateHandler)
		templates.DELETE("/:id", handlers.DeleteDocumentTemplateHandler)
		templates.POST("/:id/generate", handlers.GenerateDocumentHandler)
	}

	documents := api.Group("/documents")
	{
		documents.GET("", handlers.ListGeneratedDocumentsHandler)
		documents.GET("/:id", handlers.GetGeneratedDocumentHandler)
		documents.PATCH("/:id/status", handlers.UpdateGeneratedDocumentStatusHandler)
		documents.GET("/:id/download", handlers.DownloadGeneratedDocumentHandler)
		documents.DELETE("/:id", handlers.DeleteGeneratedDocumentHandler)
	}

	research := api.Group("/research")
	{
		research.GET("/:id", handlers.GetResearchResultHandler)
		research.DELETE("/:id", handlers.DeleteResearchResultHandler)
	}

	api.GET("/vendor-statuses", handlers.ListVendorStatusesHandler)

	vendors := api.Group("/vendors")
	{
		vendors.POST("", handlers.CreateVendorHandler)
		vendors.GET("/:id", handlers.GetVendorHandler)
		vendors.PUT("/:id", handlers.UpdateVendorHandler)
		vendors.PATCH("/:id/status", handlers.UpdateVendorStatusHandler)
		vendors.DELETE("/:id", handlers.DeleteVendorHandler)

		vendors.GET("/:id/payments", handlers.ListVendorPaymentsHandler)
		vendors.PUT("/:id/payments/:paymentId", handlers.UpdateVendorPaymentHandler)
		vendors.DELETE("/:id/payments/:paymentId", handlers.DeleteVendorPaymentHandler)
		vendors.POST("/:id/schedule/preview", handlers.PreviewVendorScheduleHandler)
		vendors.POST("/:id/schedule/generate", handlers.GenerateVendorScheduleHandler)
	}

	plans := api.Group("/payment-plans")
	{
		plans.GET("", handlers.ListPaymentPlansHandler)
		plans.POST("", handlers.CreatePaymentPlanHandler)
		plans.GET("/:id", handlers.GetPaymentPlanHandler)
		plans.PUT("/:id", handlers.UpdatePaymentPlanHandler)
		plans.DELETE("/:id", handlers.DeletePaymentPlanHandler)
	}

	rg.GET("/ws/notifications", handlers.NotificationsWSHandler)
}
