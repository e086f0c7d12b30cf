// Package services contains stateless domain services. Currently this is the
// pricing policy, which turns weight and tariff into a final price without
// touching storage or external systems.
package services
