package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rorygeddes/Luni.ca/pkg/formflow"
)

// Interactive flashcard runner for the Luni beta survey. Mainly a manual
// testing tool for the intake endpoint and the form flow package.
func main() {
	apiURL := flag.String("api", "http://localhost:5000", "base URL of the lead API")
	flag.Parse()

	form := formflow.NewFormState(formflow.LuniSurveyQuestions())
	client := formflow.NewClient(*apiURL)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Luni beta survey - answer with the option number, 'back' to go back, empty line to skip")

	for !form.AtEnd() {
		question, ok := form.CurrentQuestion()
		if !ok {
			break
		}

		fmt.Printf("\n[%d/%d] %s\n", form.CurrentIndex()+1, form.Len(), question.Prompt)
		for i, option := range question.Options {
			marker := " "
			if answered(form.Answer(question.ID), option) {
				marker = "x"
			}
			fmt.Printf("  [%s] %d) %s\n", marker, i+1, option)
		}

		switch question.Kind {
		case formflow.KindText:
			fmt.Print("> ")
			if !scanner.Scan() {
				return
			}
			input := strings.TrimSpace(scanner.Text())
			if input == "back" {
				form.Retreat()
				continue
			}
			if input != "" {
				form.SetAnswer(question.ID, input)
			}
			form.Advance()

		case formflow.KindSingleChoice:
			fmt.Print("> ")
			if !scanner.Scan() {
				return
			}
			input := strings.TrimSpace(scanner.Text())
			if input == "back" {
				form.Retreat()
				continue
			}
			if input == "" {
				form.Advance()
				continue
			}
			option, ok := optionByNumber(question, input)
			if !ok {
				fmt.Println("invalid option")
				continue
			}
			form.SetAnswer(question.ID, option)
			// Let the scheduled auto-advance move the form, like the UI does.
			time.Sleep(formflow.AutoAdvanceDelay + 50*time.Millisecond)

		case formflow.KindMultiChoice:
			fmt.Println("(toggle options one by one, empty line when done)")
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					return
				}
				input := strings.TrimSpace(scanner.Text())
				if input == "" {
					break
				}
				if input == "back" {
					break
				}
				option, ok := optionByNumber(question, input)
				if !ok {
					fmt.Println("invalid option")
					continue
				}
				form.SetAnswer(question.ID, option)
				fmt.Printf("  selected: %s\n", form.Answer(question.ID))
			}
			// Manual navigation cancels any pending auto-advance.
			form.Advance()
		}
	}

	if !form.IsComplete() {
		fmt.Println("\nEmail is required - going back")
		form.Retreat()
		fmt.Print("Email address > ")
		if !scanner.Scan() {
			return
		}
		form.SetAnswer("email", strings.TrimSpace(scanner.Text()))
		form.Advance()
	}

	form.BeginSubmit()
	result, err := client.Submit(form.Values())
	if err != nil {
		form.MarkFailed()
		fmt.Fprintf(os.Stderr, "submission failed: %v\n", err)
		os.Exit(1)
	}

	form.MarkSubmitted()
	fmt.Printf("\n%s (id: %s)\n", result.Message, result.ID)
}

func optionByNumber(question formflow.Question, input string) (string, bool) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(question.Options) {
		return "", false
	}
	return question.Options[n-1], true
}

func answered(value string, option string) bool {
	for _, part := range strings.Split(value, ",") {
		if part == option {
			return true
		}
	}
	return false
}
