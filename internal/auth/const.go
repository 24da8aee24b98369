package auth

type SessionKey string

var (
	SessionKeyRedirectAfterLogin SessionKey = "redirect_after_login"
)
