package gridfill

import "gridfill/reconcile"

// mergeOptions holds configuration for a reconciliation run.
type mergeOptions struct {
	// Treat malformed merges as hard errors.
	strict bool

	// Rule combining classifier tag and source label; nil means
	// reconcile.DefaultResolver.
	resolve reconcile.Resolver
}

// defaultMergeOptions returns the default run options.
func defaultMergeOptions() mergeOptions {
	return mergeOptions{
		strict:  false,
		resolve: nil,
	}
}

// clone creates a copy of mergeOptions.
func (o mergeOptions) clone() mergeOptions {
	return mergeOptions{
		strict:  o.strict,
		resolve: o.resolve,
	}
}
