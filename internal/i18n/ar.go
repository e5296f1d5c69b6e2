package i18n

var arabic = map[string]string{
	// Navigation
	"nav.home":      "الرئيسية",
	"nav.menu":      "القائمة",
	"nav.bookTable": "احجز طاولة",
	"nav.cart":      "السلة",
	"nav.orders":    "طلباتي",

	// Cart
	"cart.title":    "سلة التسوق",
	"cart.empty":    "سلتك فارغة",
	"cart.total":    "الإجمالي",
	"cart.checkout": "إتمام الطلب",
	"cart.remove":   "إزالة",

	// Checkout
	"checkout.title":          "إتمام الطلب",
	"checkout.name":           "الاسم",
	"checkout.phone":          "رقم الهاتف",
	"checkout.address":        "عنوان التوصيل",
	"checkout.instructions":   "تعليمات خاصة",
	"checkout.paymentMethod":  "طريقة الدفع",
	"checkout.payment.cash":   "نقداً عند الاستلام",
	"checkout.payment.card":   "بطاقة",
	"checkout.payment.online": "دفع إلكتروني",
	"checkout.placeOrder":     "تأكيد الطلب",
	"checkout.success":        "تم استلام طلبك بنجاح",
	"checkout.failure":        "حدث خطأ أثناء تنفيذ الطلب، حاول مرة أخرى",

	// Booking
	"booking.title":    "حجز طاولة",
	"booking.date":     "التاريخ",
	"booking.time":     "الوقت",
	"booking.guests":   "عدد الضيوف",
	"booking.requests": "طلبات خاصة",
	"booking.submit":   "تأكيد الحجز",
	"booking.success":  "تم استلام حجزك بنجاح",
	"booking.failure":  "حدث خطأ أثناء إنشاء الحجز",

	// Order tracking
	"orders.title":     "تتبع الطلبات",
	"orders.notFound":  "الطلب غير موجود",
	"orders.loadError": "فشل في تحميل الطلبات",

	// Reservations (admin)
	"reservations.loadError": "فشل في تحميل الحجوزات",

	// Order statuses
	"status.order.pending":   "قيد الانتظار",
	"status.order.preparing": "قيد التحضير",
	"status.order.on_way":    "في الطريق",
	"status.order.completed": "تم التوصيل",
	"status.order.cancelled": "ملغي",

	// Payment statuses
	"status.payment.paid":    "مدفوع",
	"status.payment.pending": "قيد الدفع",
	"status.payment.unpaid":  "غير مدفوع",

	// Reservation statuses
	"status.reservation.pending":   "قيد الانتظار",
	"status.reservation.confirmed": "مؤكد",
	"status.reservation.cancelled": "ملغي",

	// Notifications
	"notify.order.title":         "طلب جديد",
	"notify.order.message":       "طلب جديد من %s بقيمة %.2f جنيه",
	"notify.reservation.title":   "حجز جديد",
	"notify.reservation.message": "حجز جديد من %s لعدد %d ضيوف يوم %s الساعة %s",
	"notify.guest":               "ضيف",
}
