// askcli runs the assistant desk in a terminal. Each stdin line is one
// question; replies are printed with their quick links highlighted.
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"afrimigrate-be/internal/constant"
	"afrimigrate-be/pkg/helpdesk"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"
)

func main() {
	faqPath := flag.String("faq", "config/faqs.yaml", "FAQ YAML file; built-in FAQs are used when it does not exist")
	delay := flag.Duration("delay", 0, "simulated reply delay")
	desk := flag.String("desk", constant.DeskHelp, "assistant desk: help or support")
	flag.Parse()

	var (
		responder helpdesk.Responder
		greeting  = helpdesk.DefaultGreeting
	)
	switch *desk {
	case constant.DeskHelp:
		kb, err := helpdesk.NewKnowledgeBase(*faqPath, constant.HelpCenterFAQs)
		if err != nil {
			color.Red("Failed to load FAQs: %v", err)
			os.Exit(1)
		}
		responder = kb
	case constant.DeskSupport:
		responder = helpdesk.NewKeywordResponder(constant.SupportRules, constant.SupportFallback)
		greeting = constant.SupportGreeting
	default:
		color.Red("Unknown desk %q", *desk)
		os.Exit(2)
	}

	replies := make(chan struct{}, 16)
	session := helpdesk.NewSession(responder,
		helpdesk.WithReplyDelay(*delay),
		helpdesk.WithGreeting(greeting),
	)
	session.OnAppend(func(m helpdesk.Message) {
		if m.Role != helpdesk.RoleAssistant {
			return
		}
		printReply(m.Content)
		select {
		case replies <- struct{}{}:
		default:
		}
	})
	session.Open()
	<-replies

	scanner := bufio.NewScanner(os.Stdin)
	for {
		color.New(color.FgCyan).Print("> ")
		if !scanner.Scan() {
			break
		}
		if _, err := session.Ask(scanner.Text()); err != nil {
			continue
		}
		select {
		case <-replies:
		case <-time.After(*delay + 5*time.Second):
			color.Yellow("(no reply)")
		}
	}
	session.Close()

	if err := scanner.Err(); err != nil {
		color.Red("Failed to read input: %v", err)
		os.Exit(1)
	}
}

func printReply(content string) {
	link := color.New(color.FgGreen, color.Underline)
	for _, line := range helpdesk.Linkify(content) {
		for _, s := range line {
			if s.IsRoute() {
				link.Print(string(s.Route))
				continue
			}
			fmt.Print(s.Text)
		}
		fmt.Println()
	}
}
