package services_test

import (
	"context"
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/users-api/internal/domain/entities"
	domainerrors "github.com/rafabene/users-api/internal/domain/errors"
	"github.com/rafabene/users-api/internal/domain/repositories"
	"github.com/rafabene/users-api/internal/services"
)

var _ = Describe("UserService", func() {
	var (
		ctx     context.Context
		repo    *fakeUserRepository
		uow     *fakeUnitOfWork
		service *services.UserService
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = newFakeUserRepository()
		uow = &fakeUnitOfWork{}
		service = services.NewUserService(repo, uow, discardLogger{})
	})

	create := func(name, email string, active bool) int64 {
		user, err := service.CreateUser(ctx, services.CreateUserInput{Name: name, Email: email, Active: active})
		Expect(err).NotTo(HaveOccurred())
		return user.ID
	}

	Describe("CreateUser", func() {
		It("retorna o usuário com o ID atribuído", func() {
			user, err := service.CreateUser(ctx, services.CreateUserInput{
				Name: "Ana", Email: "Ana@Example.com", Active: true,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(BeNumerically(">", 0))
			Expect(user.Email.String()).To(Equal("ana@example.com"))

			found, err := service.GetUser(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(Equal(user))
		})

		It("nunca reutiliza IDs", func() {
			first := create("Ana", "ana@example.com", true)
			second := create("Pedro", "pedro@example.com", true)

			Expect(second).NotTo(Equal(first))
		})

		DescribeTable("rejeita entrada inválida sem tocar no banco",
			func(input services.CreateUserInput, field string) {
				_, err := service.CreateUser(ctx, input)

				var verr *domainerrors.ValidationError
				Expect(errors.As(err, &verr)).To(BeTrue())
				Expect(verr.Field).To(Equal(field))
				Expect(repo.users).To(BeEmpty())
				Expect(uow.commits + uow.rollbacks).To(BeZero())
			},
			Entry("nome vazio", services.CreateUserInput{Name: "", Email: "ana@example.com"}, "name"),
			Entry("nome só com espaços", services.CreateUserInput{Name: "   ", Email: "ana@example.com"}, "name"),
			Entry("email inválido", services.CreateUserInput{Name: "Ana", Email: "ana"}, "email"),
			Entry("email vazio", services.CreateUserInput{Name: "Ana", Email: ""}, "email"),
		)

		It("não registra o email no log quando a criação falha", func() {
			logger := &recordingLogger{}
			service = services.NewUserService(repo, uow, logger)
			repo.createErr = errors.New("connection reset")

			_, err := service.CreateUser(ctx, services.CreateUserInput{Name: "Ana", Email: "ana@example.com"})

			Expect(err).To(HaveOccurred())
			Expect(logger.warnings).To(HaveLen(1))
			Expect(fmt.Sprint(logger.warnings)).NotTo(ContainSubstring("ana@example.com"))
			Expect(logger.warnings[0]).To(ContainElement("create user"))
		})

		It("converte falha do banco em StorageError", func() {
			repo.createErr = errors.New("duplicate key")

			_, err := service.CreateUser(ctx, services.CreateUserInput{Name: "Ana", Email: "ana@example.com"})

			var serr *domainerrors.StorageError
			Expect(errors.As(err, &serr)).To(BeTrue())
			Expect(serr.Op).To(Equal("create user"))
			Expect(uow.rollbacks).To(Equal(1))
		})
	})

	Describe("GetUser", func() {
		It("retorna ErrUserNotFound para id inexistente", func() {
			_, err := service.GetUser(ctx, 99)

			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})

	Describe("ListUsers", func() {
		BeforeEach(func() {
			create("Ana", "ana@example.com", true)
			create("Silvana", "silvana@example.com", false)
			create("Pedro", "pedro@example.com", true)
		})

		It("lista vazia não é erro", func() {
			users, err := service.ListUsers(ctx, repositories.UserFilters{Name: "zzz"})

			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(BeEmpty())
		})

		It("repassa os filtros ao repositório", func() {
			users, err := service.ListUsers(ctx, repositories.UserFilters{Name: "ana", Active: repositories.ActiveOnly})

			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(1))
			Expect(users[0].Name).To(Equal("Ana"))
		})

		It("converte erro do repositório em StorageError", func() {
			failing := &failingListRepository{fakeUserRepository: repo}
			service = services.NewUserService(failing, uow, discardLogger{})

			_, err := service.ListUsers(ctx, repositories.UserFilters{})

			Expect(domainerrors.IsStorage(err)).To(BeTrue())
		})
	})

	Describe("UpdateUser", func() {
		It("substitui todos os campos mantendo o ID", func() {
			id := create("Ana", "ana@example.com", true)

			updated, err := service.UpdateUser(ctx, id, services.UpdateUserInput{
				Name: "Ana Maria", Email: "ana.maria@example.com", Active: false,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.ID).To(Equal(id))
			Expect(updated.Name).To(Equal("Ana Maria"))
			Expect(updated.Email.String()).To(Equal("ana.maria@example.com"))
			Expect(updated.Active).To(BeFalse())
		})

		It("retorna not found e não altera a tabela para id inexistente", func() {
			create("Ana", "ana@example.com", true)
			before := map[int64]any{}
			for id, u := range repo.users {
				before[id] = u
			}

			_, err := service.UpdateUser(ctx, 42, services.UpdateUserInput{Name: "X", Email: "x@example.com"})

			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
			Expect(repo.users).To(HaveLen(len(before)))
			for id, u := range repo.users {
				Expect(before[id]).To(Equal(u))
			}
		})

		It("valida antes de consultar o banco", func() {
			repo.findErr = errors.New("não deveria ser chamado")

			_, err := service.UpdateUser(ctx, 1, services.UpdateUserInput{Name: "Ana", Email: "invalido"})

			Expect(domainerrors.IsValidation(err)).To(BeTrue())
		})

		It("sinaliza ConsistencyError quando o UPDATE não afeta linhas", func() {
			id := create("Ana", "ana@example.com", true)
			repo.updateMissing = true

			_, err := service.UpdateUser(ctx, id, services.UpdateUserInput{Name: "Ana", Email: "ana@example.com", Active: true})

			var cerr *domainerrors.ConsistencyError
			Expect(errors.As(err, &cerr)).To(BeTrue())
			Expect(cerr.ID).To(Equal(id))
			Expect(uow.rollbacks).To(Equal(1))
		})

		It("converte falha na busca em StorageError", func() {
			repo.findErr = errors.New("connection refused")

			_, err := service.UpdateUser(ctx, 1, services.UpdateUserInput{Name: "Ana", Email: "ana@example.com"})

			Expect(domainerrors.IsStorage(err)).To(BeTrue())
		})
	})

	Describe("DeactivateUser", func() {
		It("desativa um usuário ativo", func() {
			id := create("Ana", "ana@example.com", true)

			Expect(service.DeactivateUser(ctx, id)).To(Succeed())
			Expect(repo.users[id].Active).To(BeFalse())
		})

		It("retorna not found na segunda chamada", func() {
			id := create("Ana", "ana@example.com", true)
			Expect(service.DeactivateUser(ctx, id)).To(Succeed())

			Expect(service.DeactivateUser(ctx, id)).To(MatchError(domainerrors.ErrUserNotFound))
		})

		It("retorna not found para id inexistente", func() {
			Expect(service.DeactivateUser(ctx, 7)).To(MatchError(domainerrors.ErrUserNotFound))
		})

		It("retorna not found quando outra requisição desativa primeiro", func() {
			id := create("Ana", "ana@example.com", true)
			repo.deactivateHit = func(id int64) {
				u := repo.users[id]
				u.Active = false
				repo.users[id] = u
			}

			Expect(service.DeactivateUser(ctx, id)).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})

	It("cenário completo de criação, filtro e soft delete", func() {
		a := create("A", "a@example.com", true)
		b := create("B", "b@example.com", false)

		active, err := service.ListUsers(ctx, repositories.UserFilters{Active: repositories.ActiveOnly})
		Expect(err).NotTo(HaveOccurred())
		Expect(active).To(HaveLen(1))
		Expect(active[0].ID).To(Equal(a))

		Expect(service.DeactivateUser(ctx, a)).To(Succeed())

		active, err = service.ListUsers(ctx, repositories.UserFilters{Active: repositories.ActiveOnly})
		Expect(err).NotTo(HaveOccurred())
		Expect(active).To(BeEmpty())

		all, err := service.ListUsers(ctx, repositories.UserFilters{Active: repositories.ActiveAny})
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(2))
		Expect(all[0].ID).To(Equal(a))
		Expect(all[0].Active).To(BeFalse())
		Expect(all[1].ID).To(Equal(b))
	})
})

type failingListRepository struct {
	*fakeUserRepository
}

func (r *failingListRepository) List(context.Context, repositories.UserFilters) ([]*entities.User, error) {
	return nil, errors.New("timeout")
}
