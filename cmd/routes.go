package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	optionalAuthMiddleware := standardMiddleware.Append(app.withOptionalUser)
	authMiddleware := standardMiddleware.Append(app.requireUser)
	adminAuthMiddleware := standardMiddleware.Append(app.requireAdmin)

	mux := pat.New()

	// Users
	mux.Post("/api/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/api/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))

	// Properties
	mux.Get("/api/properties", optionalAuthMiddleware.ThenFunc(app.propertyHandler.GetProperties))
	mux.Get("/api/properties/mine", authMiddleware.ThenFunc(app.propertyHandler.GetMyProperties))
	mux.Get("/api/properties/:id", standardMiddleware.ThenFunc(app.propertyHandler.GetPropertyByID))
	mux.Post("/api/properties", authMiddleware.ThenFunc(app.propertyHandler.CreateProperty))
	mux.Add("PATCH", "/api/properties/:id", authMiddleware.ThenFunc(app.propertyHandler.UpdateProperty))
	mux.Del("/api/properties/:id", authMiddleware.ThenFunc(app.propertyHandler.DeleteProperty))
	mux.Post("/api/properties/:id/approve", adminAuthMiddleware.ThenFunc(app.propertyHandler.ApproveProperty))
	mux.Post("/api/properties/:id/reject", adminAuthMiddleware.ThenFunc(app.propertyHandler.RejectProperty))
	mux.Post("/api/images/properties", authMiddleware.ThenFunc(app.imageHandler.UploadPropertyImage))

	// Blogs
	mux.Get("/api/blogs", standardMiddleware.ThenFunc(app.blogHandler.GetBlogs))
	mux.Get("/api/blogs/:id", standardMiddleware.ThenFunc(app.blogHandler.GetBlogByID))

	// Contact
	mux.Post("/api/contact", standardMiddleware.Append(app.rateLimitContact).ThenFunc(app.contactHandler.SubmitContact))

	// Loan calculator
	mux.Post("/api/loan/emi", standardMiddleware.ThenFunc(app.loanHandler.CalculateEMI))
	mux.Post("/api/loan/eligibility", standardMiddleware.ThenFunc(app.loanHandler.CheckEligibility))
	mux.Get("/api/loan/banks", standardMiddleware.ThenFunc(app.loanHandler.GetBanks))

	// Notifications
	mux.Get("/ws", authMiddleware.ThenFunc(app.WebSocketHandler))

	return mux
}
