// file: cmd/main.go

package main

import (
	"ged-apae-console/app"
)

// @title           GED APAE Console
// @version         1.0
// @description     Operator console for the GED APAE document management backend.

// @contact.name   APAE GED
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /
func main() {
	app.Run()
}
