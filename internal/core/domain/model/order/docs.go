// Package order models a rental order's mutable lifecycle: its status and
// payment-status sub-state, the partial update set applied by the admin
// dashboards (Patch), the joined read model used for notification payloads
// (Snapshot), and the append-only status audit record (HistoryRecord).
//
// The status lifecycle is advisory rather than an enforced state machine: any
// status may follow any other, because admins use it for manual correction.
// The single enforced rule is that cancelling an order cancels its payment in
// the same update. That rule lives in Patch.Normalize.
package order
