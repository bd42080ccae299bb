// Command chat is a terminal front-end for the portfolio chat endpoint. It
// streams the answer as it arrives and re-renders the reply with the light
// markdown the assistant uses.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"portfolio-backend/internal/client"
	"portfolio-backend/internal/markdown"
	"portfolio-backend/internal/models"
)

func main() {
	url := flag.String("url", "http://localhost:8080/api/chat", "chat endpoint URL")
	plain := flag.Bool("plain", false, "stream raw text without markdown rendering")
	flag.Parse()

	c := client.New(*url)
	if *plain {
		c.OnChunk = func(chunk string) { fmt.Print(chunk) }
	}

	// Ctrl-C aborts the in-flight request; a second one exits.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		c.Abort()
		<-sigChan
		os.Exit(0)
	}()

	fmt.Println("Portfolio assistant. Ask a question, /reset to start over, /quit to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "/quit":
			return
		case "/reset":
			c.Reset()
			fmt.Println("Conversation cleared.")
			continue
		}

		c.SetInput(line)
		if !*plain {
			fmt.Println("…")
		}
		c.Submit(c.Input())

		if *plain {
			fmt.Println()
			continue
		}
		if reply, ok := lastModelMessage(c.Messages()); ok {
			fmt.Print(markdown.ToANSI(reply))
		}
	}
}

func lastModelMessage(messages []models.Message) (string, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == models.RoleModel {
			return messages[i].Content, true
		}
	}
	return "", false
}
