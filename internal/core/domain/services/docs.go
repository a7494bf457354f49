// Package services holds stateless domain services. NotificationPolicy is
// the decision core of the order flow: it evaluates which notification
// channels an update must fire and assembles their payloads from the
// pre-update snapshot and the incoming patch.
package services
