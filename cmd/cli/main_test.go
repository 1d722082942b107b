package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_Flow(t *testing.T) {
	svc, _ := testutils.NewTestService(t)
	ctx := context.Background()
	run := func(args ...string) *bytes.Buffer {
		t.Helper()
		var out bytes.Buffer
		require.NoError(t, execute(ctx, svc, args, &out), "args: %v", args)
		return &out
	}

	var a, b dto.AccountRead
	require.NoError(t, json.Unmarshal(run("create", testutils.RandomEmail(), "0").Bytes(), &a))
	require.NoError(t, json.Unmarshal(run("create", testutils.RandomEmail()).Bytes(), &b))
	t.Cleanup(func() {
		_ = svc.DropAccount(ctx, a.ID)
		_ = svc.DropAccount(ctx, b.ID)
	})

	var got dto.AccountRead
	require.NoError(t, json.Unmarshal(run("deposit", fmt.Sprint(a.ID), "30.00").Bytes(), &got))
	assert.Equal(t, "30.00", got.Balance)

	var tx dto.TransactionRead
	require.NoError(t, json.Unmarshal(run("transfer", fmt.Sprint(a.ID), fmt.Sprint(b.ID), "12.50").Bytes(), &tx))
	assert.Equal(t, "12.50", tx.Amount)

	var read dto.TransactionRead
	require.NoError(t, json.Unmarshal(run("tx", fmt.Sprint(tx.ID)).Bytes(), &read))
	assert.Equal(t, tx, read)

	require.NoError(t, json.Unmarshal(run("get", fmt.Sprint(b.ID)).Bytes(), &got))
	assert.Equal(t, "12.50", got.Balance)

	var history []dto.TransactionRead
	require.NoError(t, json.Unmarshal(run("history", fmt.Sprint(a.ID), "10").Bytes(), &history))
	assert.Len(t, history, 2)
}

func TestExecute_Errors(t *testing.T) {
	svc, _ := testutils.NewTestService(t)
	ctx := context.Background()
	var out bytes.Buffer

	assert.ErrorIs(t, execute(ctx, svc, nil, &out), errUsage)
	assert.ErrorIs(t, execute(ctx, svc, []string{"bogus"}, &out), errUsage)
	assert.ErrorIs(t, execute(ctx, svc, []string{"transfer", "1"}, &out), errUsage)
	assert.Error(t, execute(ctx, svc, []string{"get", "abc"}, &out))
	assert.ErrorIs(t, execute(ctx, svc, []string{"get", "77"}, &out), account.ErrAccountNotFound)
	assert.Error(t, execute(ctx, svc, []string{"deposit", "1", "0.001"}, &out))
	assert.Empty(t, out.String())
}
