package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/a1henu/mini-lisp/internal/scm"
)

var serveAddr string

// serveCmd exposes the evaluator over a websocket: every connection
// gets its own child of a shared root environment, each incoming text
// message is read and evaluated there, and the rendered result (or
// "Error: <message>") is written back as one text message. Definitions
// made on one connection are invisible to every other, because define
// only ever writes to the connection's own frame.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the evaluator over a websocket",
	Long: `Start an HTTP server whose /eval endpoint upgrades to a websocket.
Each text message received on a connection is evaluated as one
expression in a per-connection environment; the printed result is sent
back as a text message.`,
	RunE: func(c *cobra.Command, args []string) error {
		root := scm.NewRootEnvironmentWithBuiltins()
		mux := http.NewServeMux()
		mux.HandleFunc("/eval", func(w http.ResponseWriter, r *http.Request) {
			serveSession(root, w, r)
		})
		server := &http.Server{
			Addr:           serveAddr,
			Handler:        mux,
			ReadTimeout:    300 * time.Second,
			WriteTimeout:   300 * time.Second,
			MaxHeaderBytes: 1 << 20,
		}
		logger.Info("serve", "addr", serveAddr)
		return server.ListenAndServe()
	},
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// serveSession runs the read loop for one websocket connection. The
// session evaluates in a child frame of the shared root, so built-ins
// are visible but top-level defines stay connection-local.
func serveSession(root *scm.Environment, w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer ws.Close()

	sessionID := uuid.New()
	logger.Info("session open", "session", sessionID, "remote", r.RemoteAddr)
	env := root.Extend(nil, nil)

	for {
		messageType, msg, err := ws.ReadMessage()
		if err != nil {
			if _, closed := err.(*websocket.CloseError); closed {
				logger.Info("session closed", "session", sessionID)
			} else {
				logger.Warn("session read failed", "session", sessionID, "err", err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		reply := evalMessage(string(msg), env)
		if err := ws.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			logger.Warn("session write failed", "session", sessionID, "err", err)
			return
		}
	}
}

// evalMessage evaluates one incoming expression and renders the reply
// the same way the REPL prints a result. exit over a websocket stops
// the whole server process, mirroring its REPL behaviour.
func evalMessage(source string, env *scm.Environment) string {
	form, err := scm.ReadOne(source)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	result, err := scm.Evaluate(form, env)
	if err != nil {
		if code, isExit := exitCode(err); isExit {
			os.Exit(code)
		}
		return fmt.Sprintf("Error: %v", err)
	}
	return scm.ToDisplayText(result)
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":4380", "listen address for the websocket server")
	rootCmd.AddCommand(serveCmd)
}
