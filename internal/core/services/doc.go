// Package services wires the ranking engine to storage and settings and
// implements the driving ports.
package services
