package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"supportdesk/internal/app"
	"supportdesk/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	cmd := os.Args[1]
	cfg, err := config.Load(os.Getenv("SD_CONFIG"))
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	logger := log.New(io.Discard, "", 0)
	instance, err := app.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("app init error: %v", err)
	}
	defer instance.Close()

	switch cmd {
	case "classify":
		cat, err := instance.Tasks.Classify(ctx, inputText())
		exitOn(err)
		fmt.Println(cat)
	case "chat":
		cat, reply, err := instance.Tasks.ClassifyAndReply(ctx, inputText())
		exitOn(err)
		fmt.Printf("category: %s\n\n%s\n", cat, reply)
	case "extract":
		schemaID := ""
		if len(os.Args) > 2 && !strings.HasPrefix(os.Args[2], "-") {
			schemaID = os.Args[2]
		}
		res, err := instance.Tasks.ExtractStructured(ctx, stdinText(), schemaID)
		exitOn(err)
		if res.Err != "" {
			fmt.Fprintf(os.Stderr, "parse error: %s\n", res.Err)
			fmt.Println(res.Raw)
			os.Exit(1)
		}
		out, _ := json.MarshalIndent(res.Data, "", "  ")
		fmt.Println(string(out))
		for _, msg := range res.ValidationErrors {
			fmt.Fprintf(os.Stderr, "validation: %s\n", msg)
		}
	case "email":
		reply, err := instance.Tasks.TemplatedReply(ctx, inputText())
		exitOn(err)
		fmt.Println(reply)
	case "summarize":
		report, err := instance.Tasks.Summarize(ctx, inputText())
		exitOn(err)
		fmt.Println(report)
	case "enqueue":
		if instance.Cache == nil {
			log.Fatalf("enqueue requires redis (set SD_REDIS_URL)")
		}
		exitOn(instance.Cache.PushTriageJob(ctx, inputText()))
		fmt.Println("queued")
	case "runs":
		if instance.Store == nil {
			log.Fatalf("runs requires a database (set SD_DB_DSN)")
		}
		runs, err := instance.Store.RecentRuns(ctx, 20)
		exitOn(err)
		for _, run := range runs {
			fmt.Printf("%s  %-9s %-7s %-16s %5dms  %s\n",
				run.CreatedAt.Format("2006-01-02 15:04:05"), run.Task, run.Status, run.Category, run.LatencyMS, run.Error)
		}
	default:
		usage()
	}
}

// inputText takes the remaining args as the input, or reads stdin when no
// args were given.
func inputText() string {
	if len(os.Args) > 2 {
		return strings.Join(os.Args[2:], " ")
	}
	return stdinText()
}

func stdinText() string {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("read stdin: %v", err)
	}
	return strings.TrimSpace(string(data))
}

func exitOn(err error) {
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func usage() {
	fmt.Println("usage: supportdesk <command> [input]")
	fmt.Println("  classify [inquiry]       resolve an inquiry to a category")
	fmt.Println("  chat [message]           classify and generate a support reply")
	fmt.Println("  extract [schema-id]      extract JSON from stdin text")
	fmt.Println("  email [text]             generate a fact-grounded email reply")
	fmt.Println("  summarize [text]         summarize text into a report")
	fmt.Println("  enqueue [inquiry]        queue an inquiry for the worker")
	fmt.Println("  runs                     list recent task runs")
}
