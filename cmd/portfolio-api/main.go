// @title        Investment Portfolio API
// @version      1.0
// @description  Accounts, the investment catalog and per-account holdings.
// @BasePath     /
package main

import "github.com/investment-app/portfolio-api/cmd/portfolio-api/cmd"

func main() {
	cmd.Execute()
}
