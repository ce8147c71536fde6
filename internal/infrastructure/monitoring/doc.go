/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the
calculus service, tracking HTTP requests, tool calls, family counts,
and uptime.

# Features

- HTTP request metrics (latency, throughput, size)
- Tool call metrics (duration, errors)
- Family registry gauge
- System metrics (uptime)

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Record custom metrics
	metrics.SetFamiliesDefined(3)

	// Time operations
	timer := monitoring.NewTimer(metrics, "calculus", "calculus.multiply")
	// ... perform operation ...
	timer.Stop("success")

# Metrics Endpoint

Expose metrics via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
