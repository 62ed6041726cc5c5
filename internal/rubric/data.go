package rubric

// Fixed evaluation datasets, one per role. Item IDs and codes are assigned by
// process() from category/item order; do not hand-number entries here.

var dataManager = []Category{
	{
		Name: "1. VẬN HÀNH",
		Items: []Item{
			{
				Name:      "Kiểm soát sự cố",
				MaxPoints: 9,
				Checklist: []string{
					"Theo dõi các ca vận hành, chủ động điều chỉnh khi có dấu hiệu bất thường",
					"Chỉ đạo xử lý sự cố đúng quy trình, đảm bảo an toàn và hạn chế tổn thất",
					"Phân tích nguyên nhân gốc rễ và triển khai biện pháp ngăn ngừa tái diễn",
				},
				Good:    Criterion{Label: "Tốt", Description: "Không có gián đoạn cấp hơi", ScorePercent: 1.0},
				Average: Criterion{Label: "Trung bình", Description: "Có sự cố, nhưng không phải bồi thường", ScorePercent: 0.7},
				Weak:    Criterion{Label: "Yếu", Description: "Để xảy ra sự gián đoạn cấp hơi phải bồi thường", ScorePercent: 0.0},
			},
			{
				Name:      "Chất lượng dịch vụ",
				MaxPoints: 10,
				Checklist: []string{
					"Đảm bảo chất lượng hơi đầu ra ổn định theo tiêu chuẩn khách hàng",
					"Giám sát áp suất, nhiệt độ, chất lượng đạt chuẩn",
					"Không để phát sinh khiếu nại hoặc phản ánh tiêu cực từ khách hàng",
				},
				Good:    Criterion{Label: "Tốt", Description: "Ổn định, không có khiếu nại của khách hàng", ScorePercent: 1.0},
				Average: Criterion{Label: "Trung bình", Description: "Có chênh lệch nhỏ so với tiêu chuẩn", ScorePercent: 0.7},
				Weak:    Criterion{Label: "Yếu", Description: "Bị khách hàng phản ánh về chất lượng", ScorePercent: 0.0},
			},
			{
				Name:      "Kiểm soát tiêu hao",
				MaxPoints: 9,
				Checklist: []string{
					"Giám sát tiêu hao nhiên liệu theo ca/kíp và phát hiện chênh lệch bất thường",
					"Theo dõi tiêu hao điện, nước, hóa chất và cảnh báo khi vượt định mức",
					"Triển khai giải pháp tối ưu hóa hiệu suất đốt để giảm lãng phí",
				},
				Good:    Criterion{Label: "Tốt", Description: "Tiêu hao nhiên liệu ≤ định mức", ScorePercent: 1.0},
				Average: Criterion{Label: "Trung bình", Description: "Vượt định mức cho phép (+1–5%)", ScorePercent: 0.7},
				Weak:    Criterion{Label: "Yếu", Description: "Vượt quá định mức cho phép (>10%)", ScorePercent: 0.0},
			},
		},
	},
	{
		Name: "2. AN TOÀN",
		Items: []Item{
			{
				Name:      "An toàn – PCCC – Môi trường",
				MaxPoints: 9,
				Checklist: []string{
					"Giám sát tuân thủ đầy đủ quy định ATLĐ và PCCC theo ca/kíp",
					"Kiểm soát khí thải, nước thải đảm bảo đạt chuẩn môi trường",
					"Chỉ đạo khắc phục ngay khi có vi phạm và tổ chức huấn luyện lại",
				},
				Good:    Criterion{Label: "Tốt", Description: "Không có sự cố Khí Thải, ATLĐ & PCCC", ScorePercent: 1.0},
				Average: Criterion{Label: "Trung bình", Description: "Có vi phạm nhỏ, đã khắc phục ngay", ScorePercent: 0.7},
				Weak:    Criterion{Label: "Yếu", Description: "Vi phạm nghiêm trọng hoặc tái diễn nhiều lần", ScorePercent: 0.0},
			},
			{
				Name:      "Kỷ luật – BHLĐ – Giám sát nội quy",
				MaxPoints: 9,
				Checklist: []string{
					"Giám sát việc sử dụng đầy đủ PPE/BHLĐ trong toàn bộ thời gian làm việc",
					"Kiểm soát tuân thủ nội quy, thời gian làm việc và khu vực hạn chế",
					"Xử lý vi phạm đúng thẩm quyền và báo cáo kịp thời cho cấp trên",
				},
				Good:    Criterion{Label: "Tốt", Description: "Đảm bảo 100% nhân sự tuân thủ nội quy", ScorePercent: 1.0},
				Average: Criterion{Label: "Trung bình", Description: "Nhắc nhở một số trường hợp vi phạm nhỏ", ScorePercent: 0.7},
				Weak:    Criterion{Label: "Yếu", Description: "Có nhân sự vi phạm kỷ luật nghiêm trọng", ScorePercent: 0.0},
			},
		},
	},
	{
		Name: "3. THIẾT BỊ",
		Items: []Item{
			{
				Name:      "Giám sát kiểm tra máy móc, hạ tầng",
				MaxPoints: 9,
				Checklist: []string{
					"Thực hiện kiểm tra – đánh giá hạ tầng nhà máy theo tần suất định kỳ",
					"Kiểm tra tình trạng thiết bị lò hàng ngày và ghi nhận đầy đủ",
					"Phát hiện sớm hư hỏng và đề xuất sửa chữa kịp thời",
				},
				Good:    Criterion{Label: "Tốt", Description: "Thực hiện kiểm tra đầy đủ 100% theo lịch tháng", ScorePercent: 1.0},
				Average: Criterion{Label: "Trung bình", Description: "Thực hiện kiểm tra đạt 70–80% kế hoạch", ScorePercent: 0.7},
				Weak:    Criterion{Label: "Yếu", Description: "Thực hiện kiểm tra dưới 70% kế hoạch", ScorePercent: 0.0},
			},
			{
				Name:      "Tuân thủ PM/CM – quản lý bảo trì",
				MaxPoints: 9,
				Checklist: []string{
					"Tổ chức và tuân thủ bảo trì định kỳ theo kế hoạch (ngưng 24 giờ theo HĐ)",
					"Nghiệm thu chất lượng bảo trì theo tiêu chuẩn kỹ thuật",
					"Đề xuất thay thế hoặc nâng cấp thiết bị khi có dấu hiệu suy giảm",
				},
				Good:    Criterion{Label: "Tốt", Description: "Hoàn thành ≥98% hạng mục bảo trì", ScorePercent: 1.0},
				Average: Criterion{Label: "Trung bình", Description: "Hoàn thành 70–80% hạng mục bảo trì", ScorePercent: 0.7},
				Weak:    Criterion{Label: "Yếu", Description: "Không ngừng máy bảo trì đúng HĐ", ScorePercent: 0.0},
			},
			{
				Name:      "Kiểm soát 5S",
				MaxPoints: 9,
				Checklist: []string{
					"Phát hiện và ghi nhận sai phạm 5S của các ca/kíp",
					"Xử lý báo cáo đúng mức độ và đúng thời gian yêu cầu",
					"Huấn luyện lại và đề xuất cải tiến khi lỗi tái diễn",
				},
				Good:    Criterion{Label: "Tốt", Description: "Kiểm soát tốt 5S, không lỗi tái diễn", ScorePercent: 1.0},
				Average: Criterion{Label: "Trung bình", Description: "Còn lỗi vi phạm nhẹ, ít tái diễn", ScorePercent: 0.7},
				Weak:    Criterion{Label: "Yếu", Description: "5S không đạt, lỗi tái diễn thường xuyên", ScorePercent: 0.0},
			},
			{
				Name:      "Báo cáo bảo trì, thiết bị định kỳ và đột xuất",
				MaxPoints: 9,
				Checklist: []string{
					"Gửi đầy đủ báo cáo tổng hợp tuần/tháng đúng thời hạn",
					"Báo cáo chi tiết tình trạng thiết bị – bảo trì định kỳ và đột xuất",
					"Phân tích xu hướng hư hỏng và cảnh báo nguy cơ trước khi xảy ra",
				},
				Good:    Criterion{Label: "Tốt", Description: "Báo cáo đầy đủ, chính xác và đúng thời hạn", ScorePercent: 1.0},
				Average: Criterion{Label: "Trung bình", Description: "Báo cáo trễ nhẹ hoặc phải nhắc nhở", ScorePercent: 0.7},
				Weak:    Criterion{Label: "Yếu", Description: "Không gửi báo cáo hoặc báo cáo không đúng", ScorePercent: 0.0},
			},
		},
	},
	{
		Name: "4. NHÂN SỰ",
		Items: []Item{
			{
				Name:      "Quản lý nhân sự",
				MaxPoints: 9,
				Checklist: []string{
					"Sắp xếp – điều phối nhân sự đảm bảo đủ quân số cho mọi ca",
					"Xử lý nghỉ đột xuất hoặc thiếu người mà không ảnh hưởng vận hành",
					"Đánh giá năng lực – thái độ và đề xuất luân chuyển phù hợp",
				},
				Good:    Criterion{Label: "Tốt", Description: "Đảm bảo đủ nhân sự, không trống ca", ScorePercent: 1.0},
				Average: Criterion{Label: "Trung bình", Description: "Thiếu hụt nhân sự nhưng đã xử lý ổn thỏa", ScorePercent: 0.7},
				Weak:    Criterion{Label: "Yếu", Description: "Thiếu nhân sự gây ảnh hưởng vận hành", ScorePercent: 0.0},
			},
			{
				Name:      "Đào tạo",
				MaxPoints: 9,
				Checklist: []string{
					"Đào tạo nhân viên mới và nhân viên chuyển vị trí (có hồ sơ đào tạo)",
					"Truyền đạt đầy đủ quy trình và các thay đổi mới",
					"Đánh giá năng lực định kỳ và huấn luyện sau sự cố",
				},
				Good:    Criterion{Label: "Tốt", Description: "100% nhân viên mới được đào tạo đạt yêu cầu", ScorePercent: 1.0},
				Average: Criterion{Label: "Trung bình", Description: "Đào tạo đạt yêu cầu ở mức khá (70-94%)", ScorePercent: 0.7},
				Weak:    Criterion{Label: "Yếu", Description: "Công tác đào tạo chưa đạt yêu cầu (<70%)", ScorePercent: 0.0},
			},
		},
	},
}

var dataShiftLeader = []Category{
	{
		Name: "1. VẬN HÀNH CA",
		Items: []Item{
			{
				Name:      "Điều hành ca trực",
				MaxPoints: 10,
				Checklist: []string{"Phân công nhiệm vụ rõ ràng đầu ca", "Giám sát thông số vận hành liên tục", "Ghi chép nhật ký đầy đủ"},
				Good:      Criterion{Label: "Tốt", Description: "Ca trực vận hành ổn định, không sự cố", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Có sai sót nhỏ trong phân công/ghi chép", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Để xảy ra sự cố do thiếu giám sát", ScorePercent: 0.0},
			},
			{
				Name:      "Xử lý sự cố cấp ca",
				MaxPoints: 10,
				Checklist: []string{"Phản ứng nhanh khi có báo động", "Phối hợp tốt với nhân viên bảo trì", "Báo cáo cấp trên kịp thời"},
				Good:      Criterion{Label: "Tốt", Description: "Xử lý triệt để sự cố trong phạm vi ca", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Xử lý được nhưng còn chậm", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Không xử lý được, gây hậu quả", ScorePercent: 0.0},
			},
		},
	},
	{
		Name: "2. QUẢN LÝ NHÂN VIÊN",
		Items: []Item{
			{
				Name:      "Kỷ luật lao động",
				MaxPoints: 10,
				Checklist: []string{"Kiểm tra đồng phục/PPE nhân viên", "Giám sát giờ giấc làm việc", "Nhắc nhở vi phạm"},
				Good:      Criterion{Label: "Tốt", Description: "100% nhân viên ca tuân thủ", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Có nhân viên vi phạm nhẹ", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Mất kiểm soát kỷ luật ca", ScorePercent: 0.0},
			},
		},
	},
	{
		Name: "3. BÁO CÁO",
		Items: []Item{
			{
				Name:      "Báo cáo giao ca",
				MaxPoints: 10,
				Checklist: []string{"Số liệu chính xác", "Ghi chú rõ các vấn đề tồn đọng", "Giao ca đúng giờ"},
				Good:      Criterion{Label: "Tốt", Description: "Báo cáo chi tiết, không sai sót", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Có sai số nhỏ", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Báo cáo sai lệch nghiêm trọng", ScorePercent: 0.0},
			},
		},
	},
}

var dataOperator = []Category{
	{
		Name: "1. VẬN HÀNH THIẾT BỊ",
		Items: []Item{
			{
				Name:      "Tuân thủ quy trình",
				MaxPoints: 15,
				Checklist: []string{"Thực hiện đúng thao tác vận hành", "Kiểm tra thông số lò hơi thường xuyên", "Vệ sinh đầu đốt/ghi lò đúng lịch"},
				Good:      Criterion{Label: "Tốt", Description: "Vận hành đúng 100% quy trình", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Có lỗi thao tác nhỏ", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Vi phạm quy trình gây nguy hiểm", ScorePercent: 0.0},
			},
			{
				Name:      "Hiệu suất vận hành",
				MaxPoints: 15,
				Checklist: []string{"Duy trì áp suất ổn định", "Tối ưu hóa nhiên liệu", "Xả đáy đúng quy định"},
				Good:      Criterion{Label: "Tốt", Description: "Áp suất ổn định, nhiên liệu tối ưu", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Có dao động áp suất", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Gây lãng phí nhiên liệu lớn", ScorePercent: 0.0},
			},
		},
	},
	{
		Name: "2. AN TOÀN & 5S",
		Items: []Item{
			{
				Name:      "Thực hiện 5S",
				MaxPoints: 10,
				Checklist: []string{"Khu vực làm việc sạch sẽ", "Dụng cụ sắp xếp gọn gàng", "Không để vật tư bừa bãi"},
				Good:      Criterion{Label: "Tốt", Description: "Khu vực luôn sạch sẽ", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Còn bừa bộn nhẹ", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Khu vực bẩn, mất vệ sinh", ScorePercent: 0.0},
			},
			{
				Name:      "Tuân thủ PPE",
				MaxPoints: 10,
				Checklist: []string{"Đeo mũ, giày, găng tay đầy đủ", "Đeo nút tai chống ồn", "Đeo khẩu trang khi tiếp xúc bụi"},
				Good:      Criterion{Label: "Tốt", Description: "Luôn tuân thủ 100%", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Phải nhắc nhở 1-2 lần", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Cố tình không tuân thủ", ScorePercent: 0.0},
			},
		},
	},
}

var dataDriver = []Category{
	{
		Name: "1. VẬN CHUYỂN",
		Items: []Item{
			{
				Name:      "An toàn giao thông",
				MaxPoints: 15,
				Checklist: []string{"Tuân thủ luật GTĐB", "Không uống rượu bia", "Lái xe đúng tốc độ"},
				Good:      Criterion{Label: "Tốt", Description: "Không vi phạm, không va quẹt", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Có va quẹt nhẹ", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Gây tai nạn hoặc bị phạt nặng", ScorePercent: 0.0},
			},
			{
				Name:      "Đáp ứng tiến độ",
				MaxPoints: 15,
				Checklist: []string{"Giao/nhận hàng đúng giờ", "Sẵn sàng tăng ca khi cần", "Lộ trình di chuyển hợp lý"},
				Good:      Criterion{Label: "Tốt", Description: "Luôn đúng giờ", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Trễ giờ 1-2 lần có lý do", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Thường xuyên trễ giờ", ScorePercent: 0.0},
			},
		},
	},
	{
		Name: "2. BẢO QUẢN XE",
		Items: []Item{
			{
				Name:      "Bảo trì bảo dưỡng",
				MaxPoints: 10,
				Checklist: []string{"Kiểm tra xe hàng ngày", "Vệ sinh xe sạch sẽ", "Báo cáo hư hỏng kịp thời"},
				Good:      Criterion{Label: "Tốt", Description: "Xe luôn sạch, máy móc ổn định", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Xe bẩn hoặc quên kiểm tra", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Để xe hư hỏng do thiếu chăm sóc", ScorePercent: 0.0},
			},
			{
				Name:      "Định mức nhiên liệu",
				MaxPoints: 10,
				Checklist: []string{"Chạy đúng định mức khoán", "Không gian lận nhiên liệu"},
				Good:      Criterion{Label: "Tốt", Description: "Đạt hoặc thấp hơn định mức", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Vượt định mức <5%", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Vượt định mức >5%", ScorePercent: 0.0},
			},
		},
	},
}

var dataWorker = []Category{
	{
		Name: "1. CÔNG VIỆC",
		Items: []Item{
			{
				Name:      "Hiệu quả công việc",
				MaxPoints: 20,
				Checklist: []string{"Hoàn thành khối lượng được giao", "Chất lượng công việc đảm bảo", "Chủ động trong công việc"},
				Good:      Criterion{Label: "Tốt", Description: "Hoàn thành xuất sắc, vượt định mức", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Hoàn thành đủ định mức", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Không hoàn thành định mức", ScorePercent: 0.0},
			},
		},
	},
	{
		Name: "2. KỶ LUẬT",
		Items: []Item{
			{
				Name:      "Giờ giấc & Nội quy",
				MaxPoints: 15,
				Checklist: []string{"Đi làm đúng giờ", "Không làm việc riêng", "Tuân thủ chỉ đạo của tổ trưởng"},
				Good:      Criterion{Label: "Tốt", Description: "Chấp hành nghiêm chỉnh", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Có vi phạm nhỏ (đi trễ)", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Chống đối hoặc thường xuyên vắng", ScorePercent: 0.0},
			},
			{
				Name:      "Vệ sinh & 5S",
				MaxPoints: 15,
				Checklist: []string{"Dọn dẹp sạch sẽ sau khi làm", "Sắp xếp dụng cụ đúng nơi quy định"},
				Good:      Criterion{Label: "Tốt", Description: "Luôn gọn gàng sạch sẽ", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Còn sót rác/dụng cụ", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Bừa bãi, gây cản trở", ScorePercent: 0.0},
			},
		},
	},
}

var dataAccountant = []Category{
	{
		Name: "1. CHUYÊN MÔN",
		Items: []Item{
			{
				Name:      "Độ chính xác số liệu",
				MaxPoints: 20,
				Checklist: []string{"Nhập liệu chính xác", "Không sai sót số học", "Đối chiếu công nợ/tồn kho đúng"},
				Good:      Criterion{Label: "Tốt", Description: "Số liệu chính xác 100%", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Sai sót nhỏ, đã sửa kịp thời", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Sai lệch số liệu nghiêm trọng", ScorePercent: 0.0},
			},
			{
				Name:      "Tiến độ báo cáo",
				MaxPoints: 15,
				Checklist: []string{"Gửi báo cáo ngày/tuần đúng giờ", "Hoàn thành quyết toán tháng đúng hạn"},
				Good:      Criterion{Label: "Tốt", Description: "Luôn đúng hoặc sớm hơn hạn", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Trễ hạn 1-2 lần (có lý do)", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Thường xuyên trễ hạn", ScorePercent: 0.0},
			},
		},
	},
	{
		Name: "2. TUÂN THỦ",
		Items: []Item{
			{
				Name:      "Quy trình kế toán",
				MaxPoints: 15,
				Checklist: []string{"Lưu trữ chứng từ khoa học", "Tuân thủ quy định tài chính công ty", "Bảo mật thông tin lương/giá"},
				Good:      Criterion{Label: "Tốt", Description: "Tuân thủ tuyệt đối", ScorePercent: 1.0},
				Average:   Criterion{Label: "TB", Description: "Có lỗi sắp xếp chứng từ", ScorePercent: 0.7},
				Weak:      Criterion{Label: "Yếu", Description: "Làm mất chứng từ hoặc lộ thông tin", ScorePercent: 0.0},
			},
		},
	},
}
