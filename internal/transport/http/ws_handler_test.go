package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"quizboard-service/internal/app"
	"quizboard-service/internal/domain"
	"quizboard-service/internal/infra/memory"
)

func TestWebSocketSubmitFlow(t *testing.T) {
	ctx := context.Background()
	repo := app.NewRepository(memory.NewGateway())
	if err := repo.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	quiz, err := repo.CreateQuiz(ctx, "WS Quiz", "", "creator-1")
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	if _, err := repo.AddQuestion(ctx, quiz.ID, app.QuestionSpec{
		Text:           "What is 2 + 2?",
		Points:         10,
		Options:        []string{"3", "4", "5"},
		Kind:           domain.KindSingle,
		CorrectAnswers: []int{1},
	}); err != nil {
		t.Fatalf("add question: %v", err)
	}
	created, _ := repo.GetQuizByID(quiz.ID)

	wsHandler := NewWSHandler(repo)
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	server := httptest.NewServer(mux)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?quizId=" + quiz.ID + "&userId=u1&name=Alice"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Initial rankings snapshot arrives first.
	if typ, _ := readNext(conn, t, "rankings"); typ != "rankings" {
		t.Fatalf("expected rankings, got %s", typ)
	}

	submit := map[string]any{
		"type": "submit",
		"payload": map[string]any{
			"answers": []map[string]any{
				{"questionId": created.Questions[0].ID, "selectedAnswers": []int{1}, "timeTaken": 0},
			},
		},
	}
	if err := conn.WriteJSON(submit); err != nil {
		t.Fatalf("write submit: %v", err)
	}

	submittedSeen := false
	rankingsSeen := false
	for i := 0; i < 3; i++ {
		typ, _ := readNext(conn, t, "")
		switch typ {
		case "submitted":
			submittedSeen = true
		case "rankings":
			rankingsSeen = true
		}
		if submittedSeen && rankingsSeen {
			break
		}
	}
	if !submittedSeen || !rankingsSeen {
		t.Fatalf("expected submitted and rankings, got submitted=%v rankings=%v", submittedSeen, rankingsSeen)
	}
}

func TestWebSocketUnknownQuiz(t *testing.T) {
	repo := app.NewRepository(memory.NewGateway())
	if err := repo.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	wsHandler := NewWSHandler(repo)
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	server := httptest.NewServer(mux)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?quizId=missing&userId=u1&name=Alice"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if typ, _ := readNext(conn, t, "error"); typ != "error" {
		t.Fatalf("expected error frame, got %s", typ)
	}
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, any) {
	t.Helper()
	var msg struct {
		Type    string `json:"type"`
		Payload any    `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s", expect, msg.Type)
	}
	return msg.Type, msg.Payload
}
