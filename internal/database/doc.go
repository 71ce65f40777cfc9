// Package database implements the feature record store on PostgreSQL via
// GORM.
package database
