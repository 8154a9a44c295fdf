// Package domain contains the entities curvelab persists and renders:
// users, classroom scenarios and the datasets computed for them. The types
// carry no infrastructure concerns so storage, API and worker packages can
// share them.
package domain
