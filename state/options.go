package state

import "github.com/odvcencio/fuzzy-state/stream"

// WriteOption configures a single mutation.
type WriteOption func(*writeConfig)

type writeConfig struct {
	quiet    bool
	allowDup bool
}

// Quiet tags the write as a set but not a change: every OnSet/OnChange
// family subscription skips this one emission. The tag travels with the
// emission itself, so concurrent writes cannot leak suppression onto each
// other.
func Quiet(cfg *writeConfig) {
	cfg.quiet = true
}

// AllowDuplicate lets Add-style mutators append a value that is already
// present.
func AllowDuplicate(cfg *writeConfig) {
	cfg.allowDup = true
}

func applyWriteOptions(opts []WriteOption) writeConfig {
	var cfg writeConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// SubscribeOption configures a named subscription variant.
type SubscribeOption func(*subscribeConfig)

type subscribeConfig struct {
	scope      *Scope
	scheduler  stream.Scheduler
	onError    func(error)
	onComplete func()
}

// InScope ties the subscription's lifetime to sc: disposing the scope tears
// the subscription down.
func InScope(sc *Scope) SubscribeOption {
	return func(cfg *subscribeConfig) {
		cfg.scope = sc
	}
}

// Via delivers callbacks through scheduler instead of synchronously.
func Via(scheduler stream.Scheduler) SubscribeOption {
	return func(cfg *subscribeConfig) {
		cfg.scheduler = scheduler
	}
}

// OnError attaches an error callback to the subscription.
func OnError(fn func(error)) SubscribeOption {
	return func(cfg *subscribeConfig) {
		cfg.onError = fn
	}
}

// OnComplete attaches a completion callback to the subscription.
func OnComplete(fn func()) SubscribeOption {
	return func(cfg *subscribeConfig) {
		cfg.onComplete = fn
	}
}

func applySubscribeOptions(opts []SubscribeOption) subscribeConfig {
	var cfg subscribeConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// QueryOption configures a live query stream.
type QueryOption func(*queryConfig)

type queryConfig struct {
	substring     bool
	everySet      bool
	includeAbsent bool
}

// Substring switches textual membership queries from exact equality to
// substring containment.
func Substring(cfg *queryConfig) {
	cfg.substring = true
}

// EverySet disables adjacent-duplicate elimination on a query stream, so
// every set is observed rather than only changes.
func EverySet(cfg *queryConfig) {
	cfg.everySet = true
}

// IncludeAbsent disables the absent-key filter on per-key query streams.
func IncludeAbsent(cfg *queryConfig) {
	cfg.includeAbsent = true
}

func applyQueryOptions(opts []QueryOption) queryConfig {
	var cfg queryConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
