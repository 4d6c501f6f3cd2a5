package query

import (
	"context"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
)

// LinkStatusInput はリンク状態確認の入力を定義します
type LinkStatusInput struct {
	Token      string
	SessionKey string
	// Password は任意。指定された場合はセッションがなくても検証します
	Password *string
}

// LinkStatusOutput はリンク状態確認の出力を定義します
type LinkStatusOutput struct {
	Status valueobject.ShareLinkStatus
	Link   *entity.ShareLink
	// Session は正しいパスワードで新たに解除した場合のみ設定されます
	Session *entity.AnonymousSession
}

// LinkStatusQuery はリンク状態確認クエリです
type LinkStatusQuery struct {
	gate service.LinkGate
}

// NewLinkStatusQuery は新しいLinkStatusQueryを作成します
func NewLinkStatusQuery(gate service.LinkGate) *LinkStatusQuery {
	return &LinkStatusQuery{gate: gate}
}

// Execute はリンクの状態を返します
func (q *LinkStatusQuery) Execute(ctx context.Context, input LinkStatusInput) (*LinkStatusOutput, error) {
	link, err := q.gate.Lookup(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	// 1. 有効なセッションがあればパスワードは再検証しない
	status, err := q.gate.Status(ctx, link, input.SessionKey)
	if err != nil {
		return nil, err
	}
	if status.IsOk() || input.Password == nil {
		return &LinkStatusOutput{Status: status, Link: link}, nil
	}

	// 2. パスワードが添えられていれば解除を試みる
	session, err := q.gate.Unlock(ctx, link, *input.Password)
	if err != nil {
		if apperror.IsInvalidPassword(err) {
			return &LinkStatusOutput{Status: valueobject.ShareLinkStatusInvalidPassword, Link: link}, nil
		}
		return nil, err
	}

	return &LinkStatusOutput{Status: valueobject.ShareLinkStatusOk, Link: link, Session: session}, nil
}
