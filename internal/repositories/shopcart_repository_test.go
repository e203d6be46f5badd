package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/devops-shopcarts/shopcart-service/internal/models"
	repository "github.com/devops-shopcarts/shopcart-service/internal/repositories"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShopcartRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewShopcartRepo(db)
	assert.NotNil(t, repo, "NewShopcartRepo should return a non-nil repository")
}

func TestShopcartRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewShopcartRepo(db)
	ctx := t.Context()

	shopcartCols := []string{"id", "customer_name", "created_at", "last_updated"}
	itemCols := []string{"id", "shopcart_id", "name", "description", "price", "quantity", "is_urgent", "created_at", "last_updated"}

	expectedItemsSQL := regexp.QuoteMeta(`
		SELECT id, shopcart_id, name, description, price, quantity, is_urgent, created_at, last_updated
		FROM items
		WHERE shopcart_id = ANY($1)
		ORDER BY id`)

	t.Run("CreateShopcart", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`INSERT INTO shopcarts (customer_name) VALUES ($1) RETURNING id, created_at, last_updated`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			shopcart := &models.Shopcart{CustomerName: "Alice"}
			now := time.Now()

			mock.ExpectQuery(expectedSQL).
				WithArgs(shopcart.CustomerName).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "last_updated"}).
					AddRow(int64(1), now, now))

			// Act
			err := repo.CreateShopcart(ctx, shopcart)

			// Assert
			require.NoError(t, err, "CreateShopcart should not return an error on success")
			assert.Equal(t, int64(1), shopcart.ID, "Shopcart ID should be updated")
			assert.WithinDuration(t, now, shopcart.CreatedAt, time.Second, "Shopcart CreatedAt should be updated")
			assert.WithinDuration(t, now, shopcart.LastUpdated, time.Second, "Shopcart LastUpdated should be updated")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			shopcart := &models.Shopcart{CustomerName: "Bob"}
			dbError := errors.New("database insertion error")

			mock.ExpectQuery(expectedSQL).
				WithArgs(shopcart.CustomerName).
				WillReturnError(dbError)

			// Act
			err := repo.CreateShopcart(ctx, shopcart)

			// Assert
			require.Error(t, err, "CreateShopcart should return an error on database failure")
			assert.ErrorIs(t, err, dbError, "Returned error should be the database error")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetShopcartByID", func(t *testing.T) {
		shopcartID := int64(42)
		now := time.Now()

		expectedSQL := regexp.QuoteMeta(`
		SELECT id, customer_name, created_at, last_updated
		FROM shopcarts
		WHERE id = $1`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs(shopcartID).
				WillReturnRows(sqlmock.NewRows(shopcartCols).
					AddRow(shopcartID, "Alice", now, now))

			mock.ExpectQuery(expectedItemsSQL).
				WithArgs(pq.Array([]int64{shopcartID})).
				WillReturnRows(sqlmock.NewRows(itemCols).
					AddRow(int64(7), shopcartID, "hat", "a hat to wear", 2.45, 12, false, now, now))

			// Act
			shopcart, err := repo.GetShopcartByID(ctx, shopcartID)

			// Assert
			require.NoError(t, err, "GetShopcartByID should not return an error when the cart is found")
			assert.Equal(t, shopcartID, shopcart.ID)
			assert.Equal(t, "Alice", shopcart.CustomerName)
			require.Len(t, shopcart.Items, 1, "Shopcart should carry its nested items")
			assert.Equal(t, "hat", shopcart.Items[0].Name)
			assert.Equal(t, shopcartID, shopcart.Items[0].ShopcartID)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Success_NoItems", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs(shopcartID).
				WillReturnRows(sqlmock.NewRows(shopcartCols).
					AddRow(shopcartID, "Alice", now, now))

			mock.ExpectQuery(expectedItemsSQL).
				WithArgs(pq.Array([]int64{shopcartID})).
				WillReturnRows(sqlmock.NewRows(itemCols))

			// Act
			shopcart, err := repo.GetShopcartByID(ctx, shopcartID)

			// Assert
			require.NoError(t, err)
			assert.NotNil(t, shopcart.Items, "Items should be an empty slice, not nil")
			assert.Empty(t, shopcart.Items)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs(shopcartID).
				WillReturnError(sql.ErrNoRows)

			// Act
			shopcart, err := repo.GetShopcartByID(ctx, shopcartID)

			// Assert
			require.Error(t, err, "GetShopcartByID should return an error when the cart is not found")
			assert.ErrorIs(t, err, sql.ErrNoRows, "Returned error should be sql.ErrNoRows")
			assert.Nil(t, shopcart, "Returned shopcart should be nil on error")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("ShopcartExists", func(t *testing.T) {
		shopcartID := int64(42)

		expectedSQL := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM shopcarts WHERE id = $1)`)

		t.Run("Exists", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs(shopcartID).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

			// Act
			exists, err := repo.ShopcartExists(ctx, shopcartID)

			// Assert
			require.NoError(t, err)
			assert.True(t, exists)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("DoesNotExist", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs(shopcartID).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

			// Act
			exists, err := repo.ShopcartExists(ctx, shopcartID)

			// Assert
			require.NoError(t, err)
			assert.False(t, exists)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			dbError := errors.New("exists query failed")
			mock.ExpectQuery(expectedSQL).
				WithArgs(shopcartID).
				WillReturnError(dbError)

			// Act
			exists, err := repo.ShopcartExists(ctx, shopcartID)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			assert.False(t, exists)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateShopcart", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`
		UPDATE shopcarts SET customer_name = $1, last_updated = NOW()
		WHERE id = $2
		RETURNING last_updated`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			shopcart := &models.Shopcart{ID: 42, CustomerName: "Alice Updated"}
			updatedAt := time.Now()

			mock.ExpectQuery(expectedSQL).
				WithArgs(shopcart.CustomerName, shopcart.ID).
				WillReturnRows(sqlmock.NewRows([]string{"last_updated"}).AddRow(updatedAt))

			// Act
			err := repo.UpdateShopcart(ctx, shopcart)

			// Assert
			require.NoError(t, err, "UpdateShopcart should not return an error on success")
			assert.WithinDuration(t, updatedAt, shopcart.LastUpdated, time.Second, "Shopcart LastUpdated should be updated")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			shopcart := &models.Shopcart{ID: 99, CustomerName: "Ghost"}

			mock.ExpectQuery(expectedSQL).
				WithArgs(shopcart.CustomerName, shopcart.ID).
				WillReturnError(sql.ErrNoRows)

			// Act
			err := repo.UpdateShopcart(ctx, shopcart)

			// Assert
			require.Error(t, err, "UpdateShopcart should return an error if the cart to update is not found")
			assert.ErrorIs(t, err, sql.ErrNoRows, "Returned error should be sql.ErrNoRows")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("DeleteShopcart", func(t *testing.T) {
		shopcartID := int64(42)

		expectedSQL := regexp.QuoteMeta(`DELETE FROM shopcarts WHERE id = $1`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(expectedSQL).
				WithArgs(shopcartID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			deleted, err := repo.DeleteShopcart(ctx, shopcartID)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, int64(1), deleted)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("AbsentRow", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(expectedSQL).
				WithArgs(shopcartID).
				WillReturnResult(sqlmock.NewResult(0, 0))

			// Act
			deleted, err := repo.DeleteShopcart(ctx, shopcartID)

			// Assert
			require.NoError(t, err, "Deleting an absent cart is not a repository error")
			assert.Zero(t, deleted)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			dbError := errors.New("delete failed")
			mock.ExpectExec(expectedSQL).
				WithArgs(shopcartID).
				WillReturnError(dbError)

			// Act
			deleted, err := repo.DeleteShopcart(ctx, shopcartID)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			assert.Zero(t, deleted)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("ListShopcarts", func(t *testing.T) {
		now := time.Now()

		expectedListSQL := regexp.QuoteMeta(`
		SELECT id, customer_name, created_at, last_updated
		FROM shopcarts
		ORDER BY id`)

		t.Run("Success_MultipleCarts", func(t *testing.T) {
			// Arrange
			rows := sqlmock.NewRows(shopcartCols).
				AddRow(int64(1), "Alice", now, now).
				AddRow(int64(2), "Bob", now, now)
			mock.ExpectQuery(expectedListSQL).WillReturnRows(rows)

			itemRows := sqlmock.NewRows(itemCols).
				AddRow(int64(7), int64(1), "hat", "a hat to wear", 2.45, 12, false, now, now)
			mock.ExpectQuery(expectedItemsSQL).
				WithArgs(pq.Array([]int64{1, 2})).
				WillReturnRows(itemRows)

			// Act
			shopcarts, err := repo.ListShopcarts(ctx)

			// Assert
			require.NoError(t, err, "ListShopcarts should not return an error on success")
			require.Len(t, shopcarts, 2)
			assert.Len(t, shopcarts[0].Items, 1, "Items should be bucketed onto their cart")
			assert.Empty(t, shopcarts[1].Items, "Carts without items should keep an empty slice")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Success_NoCarts", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedListSQL).WillReturnRows(sqlmock.NewRows(shopcartCols))

			// Act
			shopcarts, err := repo.ListShopcarts(ctx)

			// Assert
			require.NoError(t, err, "ListShopcarts should not return an error when no carts exist")
			assert.NotNil(t, shopcarts, "Shopcarts should be an empty slice, not nil")
			assert.Empty(t, shopcarts)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("QueryError", func(t *testing.T) {
			// Arrange
			dbError := errors.New("list query failed")
			mock.ExpectQuery(expectedListSQL).WillReturnError(dbError)

			// Act
			shopcarts, err := repo.ListShopcarts(ctx)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			assert.Nil(t, shopcarts)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("ItemsQueryError", func(t *testing.T) {
			// Arrange
			dbError := errors.New("items query failed")
			mock.ExpectQuery(expectedListSQL).
				WillReturnRows(sqlmock.NewRows(shopcartCols).AddRow(int64(1), "Alice", now, now))
			mock.ExpectQuery(expectedItemsSQL).
				WithArgs(pq.Array([]int64{1})).
				WillReturnError(dbError)

			// Act
			shopcarts, err := repo.ListShopcarts(ctx)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			assert.Nil(t, shopcarts)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("FindByCustomerName", func(t *testing.T) {
		now := time.Now()

		expectedSQL := regexp.QuoteMeta(`
		SELECT id, customer_name, created_at, last_updated
		FROM shopcarts
		WHERE customer_name = $1
		ORDER BY id`)

		t.Run("Match", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs("Alice").
				WillReturnRows(sqlmock.NewRows(shopcartCols).AddRow(int64(1), "Alice", now, now))
			mock.ExpectQuery(expectedItemsSQL).
				WithArgs(pq.Array([]int64{1})).
				WillReturnRows(sqlmock.NewRows(itemCols))

			// Act
			shopcarts, err := repo.FindByCustomerName(ctx, "Alice")

			// Assert
			require.NoError(t, err)
			require.Len(t, shopcarts, 1)
			assert.Equal(t, "Alice", shopcarts[0].CustomerName)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NoMatch", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs("Bob").
				WillReturnRows(sqlmock.NewRows(shopcartCols))

			// Act
			shopcarts, err := repo.FindByCustomerName(ctx, "Bob")

			// Assert
			require.NoError(t, err, "An empty result set is not an error")
			assert.NotNil(t, shopcarts, "Shopcarts should be an empty slice, not nil")
			assert.Empty(t, shopcarts)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("EmptyShopcart", func(t *testing.T) {
		shopcartID := int64(42)
		now := time.Now()

		expectedDeleteSQL := regexp.QuoteMeta(`DELETE FROM items WHERE shopcart_id = $1`)
		expectedTouchSQL := regexp.QuoteMeta(`
		UPDATE shopcarts SET last_updated = NOW()
		WHERE id = $1
		RETURNING id, customer_name, created_at, last_updated`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectBegin()
			mock.ExpectExec(expectedDeleteSQL).
				WithArgs(shopcartID).
				WillReturnResult(sqlmock.NewResult(0, 3))
			mock.ExpectQuery(expectedTouchSQL).
				WithArgs(shopcartID).
				WillReturnRows(sqlmock.NewRows(shopcartCols).AddRow(shopcartID, "Alice", now, now))
			mock.ExpectCommit()

			// Act
			shopcart, err := repo.EmptyShopcart(ctx, shopcartID)

			// Assert
			require.NoError(t, err, "EmptyShopcart should not return an error on success")
			assert.Equal(t, shopcartID, shopcart.ID)
			assert.Equal(t, "Alice", shopcart.CustomerName, "Emptying must not change the customer name")
			assert.NotNil(t, shopcart.Items)
			assert.Empty(t, shopcart.Items, "Items collection should be empty after emptying")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			mock.ExpectBegin()
			mock.ExpectExec(expectedDeleteSQL).
				WithArgs(shopcartID).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectQuery(expectedTouchSQL).
				WithArgs(shopcartID).
				WillReturnError(sql.ErrNoRows)
			mock.ExpectRollback()

			// Act
			shopcart, err := repo.EmptyShopcart(ctx, shopcartID)

			// Assert
			require.Error(t, err, "EmptyShopcart should return an error when the cart is absent")
			assert.ErrorIs(t, err, sql.ErrNoRows)
			assert.Nil(t, shopcart)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("DeleteError", func(t *testing.T) {
			// Arrange
			dbError := errors.New("delete items failed")
			mock.ExpectBegin()
			mock.ExpectExec(expectedDeleteSQL).
				WithArgs(shopcartID).
				WillReturnError(dbError)
			mock.ExpectRollback()

			// Act
			shopcart, err := repo.EmptyShopcart(ctx, shopcartID)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			assert.Nil(t, shopcart)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
