package constants

// Static route constants
const (
	PublicRoute    = "/"
	LoginRoute     = "/login"
	LogoutRoute    = "/logout"
	SharePrefix    = "/share"
	ShareRoute     = "/share/:token"
	DashboardRoute = "/dashboard"
)
