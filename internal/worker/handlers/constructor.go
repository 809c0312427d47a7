package worker_handler

import (
	"time"

	"github.com/Xenn-00/personal-meister/internal/abstraction/tx"
	"github.com/Xenn-00/personal-meister/internal/mail"
	todo_repo "github.com/Xenn-00/personal-meister/internal/repo/todo-repo"
	user_repo "github.com/Xenn-00/personal-meister/internal/repo/user-repo"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkerHander struct {
	tr        todo_repo.TodoRepoContract
	ur        user_repo.UserRepoContract
	txManager tx.TxManager
	mailer    mail.Mailer
	now       func() time.Time
}

func NewWorkerHandler(db *pgxpool.Pool, mailer mail.Mailer) *WorkerHander {
	return &WorkerHander{
		tr:        todo_repo.NewTodoRepo(db),
		ur:        user_repo.NewUserRepo(db),
		txManager: tx.NewPgxTxManager(db),
		mailer:    mailer,
		now:       time.Now,
	}
}
