package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	// Packages
	typedapi "github.com/mutablelogic/go-typedapi"
	schema "github.com/mutablelogic/go-typedapi/pkg/schema"
	service "github.com/mutablelogic/go-typedapi/pkg/service"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type RequestCommands struct {
	Endpoints EndpointsCommand `cmd:"" group:"TYPED" help:"List typed endpoints"`
	Get       GetCommand       `cmd:"" group:"TYPED" help:"GET one or more typed endpoints"`
	Post      PostCommand      `cmd:"" group:"TYPED" help:"POST a JSON body to a typed endpoint"`
	Put       PutCommand       `cmd:"" group:"TYPED" help:"PUT a JSON body to a typed endpoint"`
	Patch     PatchCommand     `cmd:"" group:"TYPED" help:"PATCH a typed endpoint with a JSON patch"`
	Delete    DeleteCommand    `cmd:"" group:"TYPED" help:"DELETE a typed endpoint"`
	Raw       RawCommand       `cmd:"" group:"RAW" help:"Request an absolute URL, bypassing the base URL"`
}

type EndpointsCommand struct{}

type QueryFlags struct {
	Query map[string]string `name:"query" short:"q" placeholder:"KEY=VALUE" help:"Query parameter. May be repeated."`
}

type GetCommand struct {
	QueryFlags
	Names []string `arg:"" name:"name" help:"Endpoint names, fetched concurrently"`
}

type PostCommand struct {
	QueryFlags
	Name string `arg:"" name:"name" help:"Endpoint name"`
	Body string `arg:"" name:"body" optional:"" help:"JSON body, or - to read from stdin"`
}

type PutCommand struct {
	PostCommand
}

type PatchCommand struct {
	QueryFlags
	Name string `arg:"" name:"name" help:"Endpoint name"`
	Body string `arg:"" name:"patch" help:"JSON patch operations, or - to read from stdin"`
}

type DeleteCommand struct {
	QueryFlags
	Name string `arg:"" name:"name" help:"Endpoint name"`
}

type RawCommand struct {
	QueryFlags
	Method string `arg:"" name:"method" enum:"get,post,put,patch,delete,GET,POST,PUT,PATCH,DELETE" help:"HTTP method"`
	URL    string `arg:"" name:"url" help:"Absolute URL"`
	Body   string `arg:"" name:"body" optional:"" help:"JSON body, or - to read from stdin"`
}

///////////////////////////////////////////////////////////////////////////////
// CONSTANTS

// parallelGets is the maximum number of concurrent requests issued by GetCommand
const parallelGets = 4

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *EndpointsCommand) Run(app *Globals) error {
	services, err := app.Services()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range typedapi.Default().Context().Names() {
		fmt.Fprintf(w, "%s\t%s\n", name, services[name].URL())
	}
	return w.Flush()
}

func (cmd *GetCommand) Run(app *Globals) error {
	services, err := app.Services()
	if err != nil {
		return err
	}

	// Resolve all names before issuing any request
	targets := make([]*service.Service, 0, len(cmd.Names))
	for _, name := range cmd.Names {
		svc, err := services.Get(name)
		if err != nil {
			return err
		}
		targets = append(targets, svc)
	}

	// Fetch concurrently, keeping the order of the arguments
	responses := make([]*schema.Response, len(targets))
	g, ctx := errgroup.WithContext(app.Context())
	g.SetLimit(parallelGets)
	for i, svc := range targets {
		g.Go(func() error {
			resp, err := svc.Get(ctx, cmd.opts()...)
			if err != nil {
				return fmt.Errorf("%s: %w", cmd.Names[i], err)
			}
			responses[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if len(responses) == 1 {
		return prettyJSON(responses[0])
	}
	return prettyJSON(responses)
}

func (cmd *PostCommand) Run(app *Globals) error {
	return cmd.run(app, http.MethodPost)
}

func (cmd *PutCommand) Run(app *Globals) error {
	return cmd.run(app, http.MethodPut)
}

func (cmd *PatchCommand) Run(app *Globals) error {
	svc, err := lookup(app, cmd.Name)
	if err != nil {
		return err
	}
	var ops schema.Patch
	if err := readJSON(cmd.Body, &ops); err != nil {
		return err
	}
	resp, err := svc.Patch(app.Context(), ops, cmd.opts()...)
	return output(resp, err)
}

func (cmd *DeleteCommand) Run(app *Globals) error {
	svc, err := lookup(app, cmd.Name)
	if err != nil {
		return err
	}
	resp, err := svc.Delete(app.Context(), cmd.opts()...)
	return output(resp, err)
}

func (cmd *RawCommand) Run(app *Globals) error {
	// The raw factory does not need typed endpoints, but the registry is
	// configured from the same flags
	if _, err := app.Services(); err != nil {
		return err
	}
	svc := typedapi.UseRawApi()(cmd.URL)

	var resp *schema.Response
	var err error
	switch method := strings.ToUpper(cmd.Method); method {
	case http.MethodGet:
		resp, err = svc.Get(app.Context(), cmd.opts()...)
	case http.MethodDelete:
		resp, err = svc.Delete(app.Context(), cmd.opts()...)
	case http.MethodPatch:
		var ops schema.Patch
		if err := readJSON(cmd.Body, &ops); err != nil {
			return err
		}
		resp, err = svc.Patch(app.Context(), ops, cmd.opts()...)
	default:
		var body any
		if err := readJSON(cmd.Body, &body); err != nil {
			return err
		}
		if method == http.MethodPut {
			resp, err = svc.Put(app.Context(), body, cmd.opts()...)
		} else {
			resp, err = svc.Post(app.Context(), body, cmd.opts()...)
		}
	}
	return output(resp, err)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *PostCommand) run(app *Globals, method string) error {
	svc, err := lookup(app, cmd.Name)
	if err != nil {
		return err
	}
	var body any
	if err := readJSON(cmd.Body, &body); err != nil {
		return err
	}
	var resp *schema.Response
	if method == http.MethodPut {
		resp, err = svc.Put(app.Context(), body, cmd.opts()...)
	} else {
		resp, err = svc.Post(app.Context(), body, cmd.opts()...)
	}
	return output(resp, err)
}

func (q QueryFlags) opts() []service.Opt {
	if len(q.Query) == 0 {
		return nil
	}
	return []service.Opt{service.WithQuery(q.Query)}
}

// output prints the response, which is also present when the server returned
// a non-2xx status, and then returns err
func output(resp *schema.Response, err error) error {
	if resp != nil {
		if err := prettyJSON(resp); err != nil {
			return err
		}
	}
	return err
}

func lookup(app *Globals, name string) (*service.Service, error) {
	services, err := app.Services()
	if err != nil {
		return nil, err
	}
	return services.Get(name)
}

// readJSON decodes a JSON argument into v. An empty argument leaves v as is,
// and "-" reads from stdin.
func readJSON(arg string, v any) error {
	switch arg {
	case "":
		return nil
	case "-":
		return json.NewDecoder(os.Stdin).Decode(v)
	default:
		if err := json.Unmarshal([]byte(arg), v); err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}
		return nil
	}
}
