// Package platform performs best-effort OS subsystem initialization that must
// happen once on the main thread before application logic runs.
package platform

// InitCOM initializes the multithreaded COM apartment on platforms that have
// one. Another component having initialized COM first is tolerated, as is any
// other failure: this is best-effort by contract.
func InitCOM() {
	initCOM()
}
