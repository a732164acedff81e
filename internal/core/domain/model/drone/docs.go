// Package drone contains the drone aggregate. A drone's identity is
// permanent; its status cycles between serviceable (Active, Fixed) and
// Broken, and it carries at most one job at a time.
package drone
