package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"classweb-backend/pkg/client"
)

// Small admin CLI over the client SDK. The bearer token is printed by
// `login` and passed back via CLASSWEB_TOKEN (or -token) for mutations.
//
//	classweb-cli login <username> <password>
//	classweb-cli list <kind>
//	classweb-cli create <kind> '<json fields>'
//	classweb-cli update <kind> <id> '<json fields>'
//	classweb-cli delete <kind> <id>
//
// kind is one of: info, gallery, directory, agenda, about.

func main() {
	addr := flag.String("addr", "http://localhost:5000/api", "API base URL")
	token := flag.String("token", os.Getenv("CLASSWEB_TOKEN"), "bearer token for mutations")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}

	c := client.New(*addr,
		client.WithToken(*token),
		client.WithUnauthorizedHandler(func() {
			fmt.Fprintln(os.Stderr, "session expired, run login again")
		}),
	)
	cache := client.NewDataCache(c)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, c, cache, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.Client, cache *client.DataCache, args []string) error {
	switch cmd := args[0]; cmd {
	case "login":
		if len(args) != 3 {
			return errors.New("usage: login <username> <password>")
		}
		if err := c.Login(ctx, args[1], args[2]); err != nil {
			return err
		}
		fmt.Println(c.Token())
		return nil

	case "list":
		if len(args) != 2 {
			return errors.New("usage: list <kind>")
		}
		return withKind(cache, args[1], func(ops kindOps) error {
			return ops.list(ctx)
		})

	case "create":
		if len(args) != 3 {
			return errors.New("usage: create <kind> '<json fields>'")
		}
		fields, err := parseFields(args[2])
		if err != nil {
			return err
		}
		return withKind(cache, args[1], func(ops kindOps) error {
			return ops.create(ctx, fields)
		})

	case "update":
		if len(args) != 4 {
			return errors.New("usage: update <kind> <id> '<json fields>'")
		}
		fields, err := parseFields(args[3])
		if err != nil {
			return err
		}
		return withKind(cache, args[1], func(ops kindOps) error {
			return ops.update(ctx, args[2], fields)
		})

	case "delete":
		if len(args) != 3 {
			return errors.New("usage: delete <kind> <id>")
		}
		return withKind(cache, args[1], func(ops kindOps) error {
			return ops.remove(ctx, args[2])
		})

	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// kindOps adapts one typed collection to the command surface.
type kindOps struct {
	list   func(context.Context) error
	create func(context.Context, map[string]interface{}) error
	update func(context.Context, string, map[string]interface{}) error
	remove func(context.Context, string) error
}

func withKind(cache *client.DataCache, kind string, fn func(kindOps) error) error {
	switch kind {
	case "info":
		return fn(opsFor(cache.Info))
	case "gallery":
		return fn(opsFor(cache.Gallery))
	case "directory":
		return fn(opsFor(cache.Directory))
	case "agenda":
		return fn(opsFor(cache.Agenda))
	case "about":
		return fn(opsFor(cache.About))
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}
}

func opsFor[T any](col *client.Collection[T]) kindOps {
	return kindOps{
		list: func(ctx context.Context) error {
			if err := col.Fetch(ctx); err != nil {
				return err
			}
			return printJSON(col.Items())
		},
		create: func(ctx context.Context, fields map[string]interface{}) error {
			if err := col.Create(ctx, fields); err != nil {
				return err
			}
			return printJSON(col.Items())
		},
		update: func(ctx context.Context, id string, fields map[string]interface{}) error {
			if err := col.Update(ctx, id, fields); err != nil {
				return err
			}
			return printJSON(col.Items())
		},
		remove: func(ctx context.Context, id string) error {
			if err := col.Delete(ctx, id); err != nil {
				return err
			}
			return printJSON(col.Items())
		},
	}
}

func parseFields(raw string) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("invalid json fields: %w", err)
	}
	return fields, nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: classweb-cli [-addr URL] [-token TOKEN] <command>

commands:
  login <username> <password>
  list <kind>
  create <kind> '<json fields>'
  update <kind> <id> '<json fields>'
  delete <kind> <id>

kinds: info, gallery, directory, agenda, about`)
}
