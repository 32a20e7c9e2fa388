// Package config loads runtime settings for the CarbonTrail client.
//
// Sources are overlaid in order, later ones winning:
//
//	defaults -> .env file -> JSON config file (-c/-config) -> environment -> flags
package config
