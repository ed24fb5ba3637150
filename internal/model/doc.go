// Package model defines the data structures shared by the loader, the
// derivation layer and the presentation shells.
//
// # Repository
//
// The [Repository] struct is one repository record, normalized from the
// GitHub REST payload:
//
//	type Repository struct {
//	    ID          int64     // GitHub id
//	    Name        string    // unique per owner
//	    Description string    // empty when absent
//	    Language    string    // empty when GitHub reports null
//	    Stars       int       // stargazers_count
//	    Fork        bool      // fork flag
//	    HTMLURL     string    // canonical web URL
//	    UpdatedAt   time.Time // last update
//	}
//
// # SortKey
//
// [SortKey] selects the order of a projected view. It implements
// pflag.Value so commands can bind it directly as a flag.
package model
