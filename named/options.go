package named

// options holds construction-time configuration for a Collection.
type options struct {
	cmp         Comparer
	defaultName string
	nonStrict   bool
}

// Option configures collection construction.
type Option func(*options)

// WithComparer sets the string comparer used for all name matching.
// A nil comparer is ignored and the default [OrdinalIgnoreCase] is kept.
func WithComparer(cmp Comparer) Option {
	return func(o *options) {
		if cmp != nil {
			o.cmp = cmp
		}
	}
}

// WithDefaultName sets the sentinel name that identifies a value as the
// default. An empty name is ignored and the literal [DefaultName] is kept.
func WithDefaultName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.defaultName = name
		}
	}
}

// NonStrict lets a later value silently overwrite an earlier one when both
// resolve to the default slot or to the same name, instead of failing
// construction with [ErrDuplicateKey]. The overwritten value is discarded
// without recording an error.
func NonStrict() Option {
	return func(o *options) { o.nonStrict = true }
}

func buildOptions(opts []Option) options {
	o := options{cmp: OrdinalIgnoreCase, defaultName: DefaultName}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
