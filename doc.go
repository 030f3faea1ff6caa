// Package typedapi turns a base URL and a map of endpoint names to paths into
// a map of services, each of which can issue GET, POST, PUT, PATCH and DELETE
// requests. The services are published once per process and can then be
// retrieved from anywhere:
//
//	type Api string
//
//	const Users Api = "users"
//
//	err := typedapi.Initialize(schema.ServiceConfig[Api]{
//	    BaseURL:   "http://api.example.io",
//	    Endpoints: schema.Endpoints[Api]{Users: "/users"},
//	})
//
//	services, err := typedapi.UseTypedApi[Api]()
//	response, err := services[Users].Get(ctx, service.WithQuery(map[string]string{"limit": "10"}))
//
// Requests to arbitrary absolute URLs are made with UseRawApi. Note that the
// first raw request switches off base URL resolution for the process, after
// which typed services resolve their paths as absolute URLs.
//
// Packages which need isolated state, such as tests, should create their own
// registry.Registry rather than using the package-level functions.
package typedapi
