package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
)

func TestApproveDeposit(t *testing.T) {
	testCases := []struct {
		name          string
		depositID     int64
		setupMocks    func(mock pgxmock.PgxPoolIface)
		expectedError error
	}{
		{
			name:      "Approve Deposit: Success #1",
			depositID: 42,
			setupMocks: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(txOptions)
				mock.ExpectQuery(ApproveDepositGuarded).WithArgs(int64(42)).
					WillReturnRows(pgxmock.NewRows([]string{"user_id", "amount"}).
						AddRow("user-1", decimal.NewFromInt(250)))
				// Зачисление происходит ровно один раз и в той же транзакции
				mock.ExpectExec(CreditWalletBalance).WithArgs("user-1", decimal.NewFromInt(250)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
			},
			expectedError: nil,
		},
		{
			name:      "Approve Deposit: Already processed #2",
			depositID: 42,
			setupMocks: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(txOptions)
				// Заявка уже не pending - защищённое обновление не вернёт строк,
				// зачисления не происходит
				mock.ExpectQuery(ApproveDepositGuarded).WithArgs(int64(42)).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedError: ErrAlreadyProcessed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock, db := newMockDatabase(t)
			defer mock.Close()
			tc.setupMocks(mock)

			deposits := NewDepositsStorage(db)
			err := deposits.ApproveDeposit(context.Background(), tc.depositID)

			if !errors.Is(err, tc.expectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("Unmet expectations: %v", err)
			}
		})
	}
}

func TestRejectDeposit(t *testing.T) {
	testCases := []struct {
		name          string
		depositID     int64
		setupMocks    func(mock pgxmock.PgxPoolIface)
		expectedError error
	}{
		{
			name:      "Reject Deposit: Success #1",
			depositID: 42,
			setupMocks: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(RejectDepositGuarded).WithArgs(int64(42)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedError: nil,
		},
		{
			name:      "Reject Deposit: Already processed #2",
			depositID: 42,
			setupMocks: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(RejectDepositGuarded).WithArgs(int64(42)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedError: ErrAlreadyProcessed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock, db := newMockDatabase(t)
			defer mock.Close()
			tc.setupMocks(mock)

			deposits := NewDepositsStorage(db)
			err := deposits.RejectDeposit(context.Background(), tc.depositID)

			if !errors.Is(err, tc.expectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("Unmet expectations: %v", err)
			}
		})
	}
}
