// Package main - точка входа консольной демонстрации реестра людей и студентов.
//
// Приложение создаёт записи через строители, хранит их в памяти,
// выводит вычисляемые поля и считает буквы в фамилиях.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alem-hub/person-registry/cmd/registry/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
