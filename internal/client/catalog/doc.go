// Package catalog loads the browsable travel data: destinations,
// governorates and local guides.
//
// Documents are fetched over HTTP from the data base URL, retried with
// exponential backoff and cached for a stale time. When a document cannot
// be loaded the destinations and governorates fall back to built-in lists so
// there is always something to show.
package catalog
