// Command dcqlcheck evaluates a DCQL query against an mdoc document
// pool, both read from disk, and prints the result as JSON. It is the
// only place in this module that touches a filesystem or environment
// variable — pkg/dcql itself takes no configuration and performs no I/O.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"dcql/internal/config"
	"dcql/pkg/dcql"
	"dcql/pkg/logger"
	"dcql/pkg/mdoc"
)

func main() {
	queryPath := flag.String("query", "", "path to a DCQL query JSON file")
	poolPath := flag.String("pool", "", "path to an mdoc document pool JSON file")
	flag.Parse()

	if *queryPath == "" || *poolPath == "" {
		fmt.Fprintln(os.Stderr, "usage: dcqlcheck -query query.json -pool pool.json")
		os.Exit(2)
	}

	if err := run(*queryPath, *poolPath); err != nil {
		os.Exit(1)
	}
}

func run(queryPath, poolPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fail("loading configuration", err)
	}

	log, err := logger.New("dcqlcheck", "", cfg.Production)
	if err != nil {
		return fail("initializing logger", err)
	}

	requestID := uuid.NewString()
	log = log.Named(requestID)

	rawQuery, err := readJSON(queryPath)
	if err != nil {
		return fail("reading query file", err)
	}

	var pool []mdoc.Document
	if err := readJSONInto(poolPath, &pool); err != nil {
		return fail("reading document pool file", err)
	}
	if len(pool) > cfg.MaxDocuments {
		return fail("document pool too large", fmt.Errorf("got %d documents, max is %d", len(pool), cfg.MaxDocuments))
	}

	evaluator := dcql.New(dcql.WithLogger(log))

	query, issues := evaluator.ParseQuery(rawQuery)
	if len(issues) > 0 {
		return printJSON(map[string]any{"requestId": requestID, "schemaIssues": issues})
	}

	result, err := evaluator.Evaluate(pool, *query)
	if err != nil {
		if evalErr, ok := err.(*dcql.EvalError); ok {
			return printJSON(map[string]any{"requestId": requestID, "problem": dcql.Problem(evalErr)})
		}
		return fail("evaluating query", err)
	}

	return printJSON(map[string]any{"requestId": requestID, "result": result})
}

func readJSON(path string) (any, error) {
	var v any
	err := readJSONInto(path, &v)
	return v, err
}

func readJSONInto(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func fail(context string, err error) error {
	fmt.Fprintf(os.Stderr, "%s: %v\n", context, err)
	return err
}
