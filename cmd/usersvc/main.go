// Command usersvc runs the users service.
//
// @title                       Users Service API
// @version                     1.0
// @description                 Minimal user-account service: create, look up, list and delete users; exchange credentials for a bearer token.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer <token>" or "JWT <token>"
package main

import (
	"fmt"
	"os"

	"github.com/99minutos/users-service/internal/cli"
)

func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
