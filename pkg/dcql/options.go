package dcql

import (
	"dcql/pkg/logger"
	"dcql/pkg/mdoc"
)

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger attaches a structured logger; absent this option,
// evaluation is silent.
func WithLogger(log *logger.Log) Option {
	return func(e *Evaluator) {
		e.log = log
	}
}

// Evaluator is a thin, optionally-logging wrapper around this
// package's pure functions. It holds no mutable evaluation state of
// its own — every call is independent and safe to run concurrently
// from multiple goroutines, since the underlying functions never touch
// shared memory.
type Evaluator struct {
	log *logger.Log
}

// New builds an Evaluator. With no options, it logs nothing.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{log: logger.NoOp()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ParseQuery validates raw input into a Query, per the package-level
// function of the same name.
func (e *Evaluator) ParseQuery(raw any) (*Query, IssueList) {
	query, issues := ParseQuery(raw)
	if len(issues) > 0 {
		e.log.Debug("query failed schema validation", "issueCount", len(issues))
	}
	return query, issues
}

// Evaluate runs the top-level query evaluator, tracing which
// credential sets were attempted when the query declares any.
func (e *Evaluator) Evaluate(pool []mdoc.Document, query Query) (CredentialResults, error) {
	e.log.Trace("evaluating query", "documents", len(pool), "credentials", len(query.Credentials), "credentialSets", len(query.CredentialSets))

	if len(query.CredentialSets) == 0 {
		result, err := SelectCredentials(pool, query.Credentials)
		if err != nil {
			e.log.Debug("query evaluation failed", "error", err)
		} else if result == nil {
			e.log.Trace("query unsatisfied: a credential had no matching document")
		}
		return result, err
	}

	byID := credentialByID(query.Credentials)
	result := make(CredentialResults)

	for i, cs := range query.CredentialSets {
		setResult, err := e.EvaluateCredentialSet(pool, cs, byID)
		if err != nil {
			e.log.Debug("required credential set unsatisfied", "index", i, "error", err)
			return nil, err
		}
		if setResult == nil {
			e.log.Trace("optional credential set unmatched, skipping", "index", i)
			continue
		}
		for id, docs := range setResult {
			result[id] = docs
		}
	}

	return result, nil
}

// EvaluateCredential runs one credential against the pool.
func (e *Evaluator) EvaluateCredential(pool []mdoc.Document, cred Credential) ([]mdoc.Document, error) {
	matches, err := SelectCredential(pool, cred)
	e.log.Trace("evaluated credential", "id", cred.ID, "matches", len(matches), "error", err)
	return matches, err
}

// EvaluateCredentialSet runs first-match-over-options for one
// credential set. It traces every option of the set before evaluation
// starts; the log does not record which option matched or why an
// option was rejected.
func (e *Evaluator) EvaluateCredentialSet(pool []mdoc.Document, cs CredentialSet, byID map[string]Credential) (CredentialResults, error) {
	for i, option := range cs.Options {
		e.log.Trace("trying credential-set option", "index", i, "credentialIDs", option)
	}
	return SelectCredentialSet(pool, cs, byID)
}
