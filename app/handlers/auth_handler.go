package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"github.com/velato/storefront/app/auth"
	"github.com/velato/storefront/app/helpers"
	"github.com/velato/storefront/app/middlewares"
	"github.com/velato/storefront/app/utils/breadcrumb"
	"github.com/velato/storefront/app/utils/sessions"
)

type AuthHandler struct {
	authenticator *auth.Authenticator
	sessionStore  sessions.SessionStore
	render        *render.Render
	validator     *validator.Validate
}

func NewAuthHandler(a *auth.Authenticator, sessionStore sessions.SessionStore, r *render.Render, v *validator.Validate) *AuthHandler {
	return &AuthHandler{authenticator: a, sessionStore: sessionStore, render: r, validator: v}
}

type SignupForm struct {
	FirstName string `form:"first_name" validate:"required,min=2,max=100"`
	LastName  string `form:"last_name" validate:"required,min=2,max=100"`
	Email     string `form:"email" validate:"required,email"`
	Password  string `form:"password" validate:"required,min=6"`
	Phone     string `form:"phone" validate:"omitempty,min=7,max=25"`
}

func (h *AuthHandler) LoginGetHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := middlewares.UserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/account", http.StatusSeeOther)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Sign In", URL: "/login"},
	}

	pageSpecificData := map[string]interface{}{
		"title":         "Sign In",
		"Breadcrumbs":   breadcrumbs,
		"MessageStatus": r.URL.Query().Get("status"),
		"Message":       r.URL.Query().Get("message"),
	}

	data := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "auth/login", data)
}

func (h *AuthHandler) LoginPostHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("LoginPostHandler: error parsing form: %v", err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Could not process the request."), http.StatusSeeOther)
		return
	}

	user, err := h.authenticator.Login(r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		// One generic message regardless of which field was wrong.
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Invalid email or password."), http.StatusSeeOther)
		return
	}

	if err := h.sessionStore.SetUser(w, r, user); err != nil {
		log.Printf("LoginPostHandler: error persisting session for %s: %v", user.Email, err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Could not create your session."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/?status=success&message="+url.QueryEscape(fmt.Sprintf("Welcome back, %s!", user.FirstName)), http.StatusSeeOther)
}

func (h *AuthHandler) SignupGetHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := middlewares.UserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/account", http.StatusSeeOther)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Create Account", URL: "/signup"},
	}

	pageSpecificData := map[string]interface{}{
		"title":         "Create Account",
		"Breadcrumbs":   breadcrumbs,
		"MessageStatus": r.URL.Query().Get("status"),
		"Message":       r.URL.Query().Get("message"),
	}

	data := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "auth/signup", data)
}

func (h *AuthHandler) SignupPostHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("SignupPostHandler: error parsing form: %v", err)
		http.Redirect(w, r, "/signup?status=error&message="+url.QueryEscape("Could not process the request."), http.StatusSeeOther)
		return
	}

	form := SignupForm{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
		Phone:     r.FormValue("phone"),
	}
	if err := h.validator.Struct(form); err != nil {
		http.Redirect(w, r, "/signup?status=error&message="+url.QueryEscape("Please fill in every required field."), http.StatusSeeOther)
		return
	}
	if form.Password != r.FormValue("confirm_password") {
		http.Redirect(w, r, "/signup?status=error&message="+url.QueryEscape("Passwords do not match."), http.StatusSeeOther)
		return
	}

	user, err := h.authenticator.Signup(auth.SignupData{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
		Phone:     form.Phone,
	})
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			http.Redirect(w, r, "/signup?status=error&message="+url.QueryEscape("An account with this email already exists."), http.StatusSeeOther)
			return
		}
		log.Printf("SignupPostHandler: signup failed for %s: %v", form.Email, err)
		http.Redirect(w, r, "/signup?status=error&message="+url.QueryEscape("Could not create your account."), http.StatusSeeOther)
		return
	}

	if err := h.sessionStore.SetUser(w, r, user); err != nil {
		log.Printf("SignupPostHandler: error persisting session for %s: %v", user.Email, err)
	}

	http.Redirect(w, r, "/?status=success&message="+url.QueryEscape(fmt.Sprintf("Welcome to Velato, %s!", user.FirstName)), http.StatusSeeOther)
}

// LogoutHandler clears the session. Logging out while anonymous is fine.
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearUser(w, r); err != nil {
		log.Printf("LogoutHandler: error clearing session: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
