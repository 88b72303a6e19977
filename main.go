package main

import (
	"fmt"
	"os"

	"yashubustudio/labeler/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "labeler:", err)
		os.Exit(1)
	}
}
