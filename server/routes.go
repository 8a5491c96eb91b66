package server

const (
	RouteAuthorize = "/auth"
	RouteToken     = "/token"
)

func (s *Server[S]) initRoutes() {
	s.mux.Handle("GET "+RouteAuthorize, s.logRequests(s.Authorize()))
	s.mux.Handle("POST "+RouteToken, s.logRequests(s.rateLimit(s.Token())))
}
