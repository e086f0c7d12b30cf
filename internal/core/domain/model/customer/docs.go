// Package customer holds the referral-relevant slice of the customer record.
// The aggregate mutates nothing but the two referral counters; everything
// else about customers belongs to another subsystem.
package customer
