// Package services implements the driving port interfaces.
// Services contain the orchestration logic and call out through the
// driven ports (adapters): the Invoker builds and runs the external
// build-outputs invocation, the Pipeline sequences the export steps.
package services
