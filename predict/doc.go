// Package predict turns the two trained latency regressors into an
// execution-strategy decision.
//
// A Predictor bundles the fitted min-max scaler with the sm×sm and sm×dm
// networks. Decide scales the seven workload features, asks both networks
// for a total-latency estimate, and picks sm×dm when its estimate is at
// most the sm×sm one (ties favor the dense strategy, which the engine can
// always execute).
//
// The package also ships the HTTP handler used by the serving wrapper: a
// JSON POST endpoint taking the seven features and returning both estimates
// plus the chosen method.
package predict
