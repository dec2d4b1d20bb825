package fabrik

// Or returns the override value when one was supplied, otherwise fallback.
// Use it in manifest functions for fields whose default is a constant:
//
//	Title: fabrik.Or(o.Title, "Inception"),
func Or[V any](override *V, fallback V) V {
	if override != nil {
		return *override
	}
	return fallback
}

// OrFunc returns the override value when one was supplied, otherwise the
// result of calling fallback. The fallback runs only when the field was not
// supplied, so defaults that advance a sequence or register an association
// have no effect when the caller provided the value:
//
//	AuthorID: fabrik.OrFunc(o.AuthorID, func() int64 {
//	    return authors.Associate(reg).ID
//	}),
func OrFunc[V any](override *V, fallback func() V) V {
	if override != nil {
		return *override
	}
	return fallback()
}

// Ptr returns a pointer to v. It keeps override literals readable at call
// sites:
//
//	movies.ManifestWith(MovieOverrides{Title: fabrik.Ptr("The Social Network")})
func Ptr[V any](v V) *V {
	return &v
}
