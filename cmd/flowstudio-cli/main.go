// FlowStudio CLI — инструмент командной строки для просмотра flows
// через MCP-сервер FlowStudio.
//
// Использование:
//
//	flowstudio-cli [--api-url URL] [--output FILE] [--json] [--verbose]
//
// Утилита без аргументов запрашивает список flows, сохраняет снапшот
// payload в файл и печатает таблицу. API-ключ берётся из переменной
// окружения FLOWSTUDIO_MCP_TOKEN_FS (поддерживается .env).
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/shaiso/flowstudio-cli/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	_ = godotenv.Load()

	rootCmd := cli.NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
