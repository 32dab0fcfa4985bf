package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Gunvolt24/supplier_orders/internal/apiclient"
	"github.com/Gunvolt24/supplier_orders/internal/domain"
	"github.com/Gunvolt24/supplier_orders/internal/ports"
	"github.com/Gunvolt24/supplier_orders/pkg/validate"
)

// Коды выхода.
const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	exitPartial = 3
)

// run выполняет одну команду и возвращает код выхода.
func run(ctx context.Context, svc ports.SupplierOrderService, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "command is required")
		return exitUsage
	}

	cmd, rest := args[0], args[1:]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		result any
		err    error
	)
	switch cmd {
	case "list":
		page := fs.Int("page", 0, "page number")
		size := fs.Int("page-size", 0, "page size")
		status := fs.String("status", "", "status filter")
		if err = fs.Parse(rest); err != nil {
			return exitUsage
		}
		if err = validate.StatusFilter(*status); err != nil {
			break
		}
		result, err = svc.GetOrders(ctx, domain.ListParams{Page: *page, PageSize: *size, Status: *status})

	case "get":
		id := fs.String("id", "", "order item id")
		if err = fs.Parse(rest); err != nil {
			return exitUsage
		}
		result, err = svc.GetOrderItem(ctx, *id)

	case "set-status":
		id := fs.String("id", "", "order item id")
		status := fs.String("status", "", "dashboard status (confirmed is sent as processing)")
		if err = fs.Parse(rest); err != nil {
			return exitUsage
		}
		var apiStatus domain.FulfillmentStatus
		if apiStatus, err = validate.ToAPIStatus(*status); err != nil {
			break
		}
		result, err = svc.UpdateOrderFulfillment(ctx, *id, domain.FulfillmentUpdate{FulfillmentStatus: apiStatus})

	case "analytics":
		days := fs.Int("days", 0, "window in days (default 30)")
		if err = fs.Parse(rest); err != nil {
			return exitUsage
		}
		result, err = svc.GetOrderAnalytics(ctx, *days)

	case "shipments", "returns":
		page := fs.Int("page", 0, "page number")
		size := fs.Int("page-size", 0, "page size")
		if err = fs.Parse(rest); err != nil {
			return exitUsage
		}
		params := domain.PageParams{Page: *page, PageSize: *size}
		if cmd == "shipments" {
			result, err = svc.GetShipments(ctx, params)
		} else {
			result, err = svc.GetReturns(ctx, params)
		}

	case "apply":
		in := fs.String("in", "", "path to .jsonl with {\"id\",\"status\"} lines; stdin if empty")
		if err = fs.Parse(rest); err != nil {
			return exitUsage
		}
		return applyChanges(ctx, svc, *in, stdin, stdout, stderr)

	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		return exitUsage
	}

	if err != nil {
		printError(stderr, err)
		return exitFailed
	}
	if err := writeJSON(stdout, result); err != nil {
		fmt.Fprintf(stderr, "output: %v\n", err)
		return exitFailed
	}
	return exitOK
}

// applyChanges применяет пакет смен статусов. Невалидные строки и ошибки
// бэкенда не прерывают пакет; итог пишется в stderr.
func applyChanges(ctx context.Context, svc ports.SupplierOrderService, path string, stdin io.Reader, stdout, stderr io.Writer) int {
	r := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "open %s: %v\n", path, err)
			return exitFailed
		}
		defer f.Close()
		r = f
	}

	res, err := validate.ReadStatusChanges(r)
	if err != nil {
		fmt.Fprintf(stderr, "read changes: %v\n", err)
		return exitFailed
	}
	for _, le := range res.Invalid {
		fmt.Fprintf(stderr, "line %d: %v\n", le.Line, le.Err)
	}

	applied, failed := 0, 0
	for _, ch := range res.Changes {
		if ctx.Err() != nil {
			fmt.Fprintf(stderr, "interrupted: %v\n", ctx.Err())
			break
		}
		if _, err := svc.UpdateOrderFulfillment(ctx, ch.ID, domain.FulfillmentUpdate{FulfillmentStatus: ch.Status}); err != nil {
			failed++
			fmt.Fprintf(stderr, "id=%s: ", ch.ID)
			printError(stderr, err)
			continue
		}
		applied++
		fmt.Fprintf(stdout, "%s\t%s\n", ch.ID, ch.Status)
	}

	fmt.Fprintf(stderr, "applied=%d failed=%d invalid=%d\n", applied, failed, len(res.Invalid))
	if failed > 0 || len(res.Invalid) > 0 {
		return exitPartial
	}
	return exitOK
}

func printError(w io.Writer, err error) {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		fmt.Fprintf(w, "error: %s (status %d)\n", apiErr.Message, apiErr.Status)
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
