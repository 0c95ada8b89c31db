// Package courier contains the delivery-person aggregate for the dispatch
// roster.
//
// A courier is a person who picks up confirmed orders at the depot and brings
// them to customers. The roster is small and operator-managed: people are
// added with a name and phone, toggled inactive when unavailable, and removed
// when they leave. Only active couriers can receive new assignments; the
// assignment rule itself lives in the services package because it spans the
// courier and order aggregates.
package courier
